package dsl

import (
	"fmt"

	"github.com/aretw0/parley/pkg/domain"
)

// Builder manages the construction of a tree document.
// Elements keep the order in which they were first added, so the first
// one becomes the root once the document is compiled.
type Builder struct {
	name  string
	order []string
	nodes map[string]*NodeBuilder
}

// New creates a new document builder for the named tree.
func New(name string) *Builder {
	return &Builder{
		name:  name,
		nodes: make(map[string]*NodeBuilder),
	}
}

func (b *Builder) add(id string, kind domain.Kind, text string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		nb.kind = kind
		nb.text = text
		return nb
	}
	nb := &NodeBuilder{
		id:      id,
		kind:    kind,
		text:    text,
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Line adds (or redefines) a line node.
func (b *Builder) Line(id, text string) *NodeBuilder {
	return b.add(id, domain.KindLine, text)
}

// Choice adds (or redefines) a choice node.
func (b *Builder) Choice(id, text string) *NodeBuilder {
	return b.add(id, domain.KindChoice, text)
}

// Build returns the document in the same attribute layout a tree file uses.
func (b *Builder) Build() *domain.Document {
	doc := &domain.Document{
		Name:     b.name,
		Elements: make([]domain.Element, 0, len(b.order)),
	}
	for _, id := range b.order {
		doc.Elements = append(doc.Elements, b.nodes[id].element())
	}
	return doc
}

func optionAttrs(i int, o option) []domain.Attr {
	return []domain.Attr{
		{Name: fmt.Sprintf("choice_%d", i), Value: o.label},
		{Name: fmt.Sprintf("choiceNode_%d", i), Value: o.target},
	}
}
