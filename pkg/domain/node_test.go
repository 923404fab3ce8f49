package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineNode(t *testing.T) {
	end := domain.NewLine("end", "", "Bye")
	start := domain.NewLine("start", "Guard", "Halt!")
	start.Next = end

	assert.True(t, start.HasNext())
	assert.Same(t, end, start.NextNode())
	assert.False(t, start.IsTerminal())

	assert.True(t, end.HasNext(), "a terminal line can still be left")
	assert.Nil(t, end.NextNode())
	assert.True(t, end.IsTerminal())

	assert.ErrorIs(t, start.Choose(0), domain.ErrNotChoice)
	assert.Equal(t, domain.NoChoice, start.Chosen())
}

func TestChoiceNode(t *testing.T) {
	yes := domain.NewLine("yes", "", "Great")
	no := domain.NewLine("no", "", "Too bad")
	ask := domain.NewChoice("ask", "Guard", "Pass?")
	ask.Options = []domain.Option{{Label: "Yes", Target: yes}, {Label: "No", Target: no}}

	assert.False(t, ask.HasNext())
	assert.Nil(t, ask.NextNode())

	t.Run("Out of range keeps selection", func(t *testing.T) {
		require.NoError(t, ask.Choose(1))

		err := ask.Choose(2)
		var rangeErr *domain.IndexOutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, 2, rangeErr.Index)
		assert.Equal(t, 2, rangeErr.Len)

		assert.Error(t, ask.Choose(-1))
		assert.Equal(t, 1, ask.Chosen())
		assert.Same(t, no, ask.NextNode())
	})

	t.Run("Clear", func(t *testing.T) {
		ask.ClearChoice()
		assert.False(t, ask.HasNext())
		assert.Equal(t, domain.NoChoice, ask.Chosen())
	})
}

func TestElement_ID(t *testing.T) {
	assert.Equal(t, "greet", domain.Element{Tag: "greet"}.ID())
	assert.Equal(t, "intro", domain.Element{Tag: "node", Attrs: []domain.Attr{{Name: "id", Value: "intro"}}}.ID())

	v, ok := domain.Element{Attrs: []domain.Attr{{Name: "who", Value: "Guard"}}}.Attr("who")
	assert.True(t, ok)
	assert.Equal(t, "Guard", v)
}

func TestTree_Node(t *testing.T) {
	a := domain.NewLine("a", "", "A")
	tree := &domain.Tree{ID: "t", Root: a, Nodes: []*domain.Node{a}}
	assert.Same(t, a, tree.Node("a"))
	assert.Nil(t, tree.Node("missing"))
}
