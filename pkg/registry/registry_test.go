package registry_test

import (
	"errors"
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(id, text string) *domain.Tree {
	root := domain.NewLine("start", "", text)
	return &domain.Tree{ID: id, Root: root, Nodes: []*domain.Node{root}}
}

func TestRegistry_RegisterLookup(t *testing.T) {
	reg := registry.NewRegistry()
	guard := tree("guard", "Halt!")
	reg.Register("guard", guard)

	got, err := reg.Lookup("guard")
	require.NoError(t, err)
	assert.Same(t, guard, got)
}

func TestRegistry_NotFound(t *testing.T) {
	reg := registry.NewRegistry()

	_, err := reg.Lookup("ghost")
	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ghost", notFound.Name)
	assert.Equal(t, domain.DocumentTree, notFound.Kind)
}

func TestRegistry_LastWriterWins(t *testing.T) {
	reg := registry.NewRegistry()
	old := tree("guard", "old")
	reg.Register("guard", old)
	reg.Register("guard", tree("guard", "new"))

	got, err := reg.Lookup("guard")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Root.Text)
	assert.Equal(t, "old", old.Root.Text, "the replaced tree itself is untouched")
}

func TestRegistry_List(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("b", tree("b", ""))
	reg.Register("a", tree("a", ""))
	reg.Register("b", tree("b", ""))

	assert.Equal(t, []string{"a", "b"}, reg.List())
}
