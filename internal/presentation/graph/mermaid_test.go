package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/parley/internal/presentation/graph"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func sampleTree() *domain.Tree {
	a := domain.NewLine("greet-1", "Guard", "Hello")
	b := domain.NewChoice("ask", "", "Pass?")
	c := domain.NewLine("pass", "", "Go")
	d := domain.NewLine("loop", "", "Again")
	a.Next = b
	b.Options = []domain.Option{{Label: `Say "yes"`, Target: c}, {Label: "No", Target: d}}
	d.Next = a
	return &domain.Tree{ID: "guard", Root: a, Nodes: []*domain.Node{a, b, c, d}}
}

func TestGenerateMermaid(t *testing.T) {
	got := graph.GenerateMermaid(sampleTree(), nil)

	for _, want := range []string{
		"graph TD\n",
		`greet_1(("greet-1 <br/> Guard"))`,
		`ask{"ask"}`,
		`pass(["pass"])`,
		`loop["loop"]`,
		"greet_1 --> ask",
		`ask -- "Say 'yes'" --> pass`,
		`ask -- "No" --> loop`,
		"loop --> greet_1",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "classDef")
	assert.NotContains(t, got, "pass -->", "terminal lines have no outgoing edge")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	got := graph.GenerateMermaid(sampleTree(), &graph.GraphOverlay{
		VisitedNodes: []string{"greet-1", "ask", "greet-1"},
		CurrentNode:  "ask",
	})

	assert.Contains(t, got, "classDef visited")
	assert.Equal(t, 1, strings.Count(got, "class greet_1 visited;"))
	assert.Contains(t, got, "class ask visited;")
	assert.Contains(t, got, "class ask current;")
}
