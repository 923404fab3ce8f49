package dsl

import "github.com/aretw0/parley/pkg/domain"

type option struct {
	label  string
	target string
}

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	id      string
	kind    domain.Kind
	text    string
	speaker string
	next    string
	options []option
	builder *Builder
}

// Who sets the speaker.
func (n *NodeBuilder) Who(speaker string) *NodeBuilder {
	n.speaker = speaker
	return n
}

// Next sets the successor of a line node.
func (n *NodeBuilder) Next(target string) *NodeBuilder {
	n.next = target
	return n
}

// Option appends a labelled option to a choice node.
func (n *NodeBuilder) Option(label, target string) *NodeBuilder {
	n.options = append(n.options, option{label: label, target: target})
	return n
}

// Terminal clears the successor of a line node.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.next = ""
	return n
}

// Line continues the chain on the parent builder.
func (n *NodeBuilder) Line(id, text string) *NodeBuilder {
	return n.builder.Line(id, text)
}

// Choice continues the chain on the parent builder.
func (n *NodeBuilder) Choice(id, text string) *NodeBuilder {
	return n.builder.Choice(id, text)
}

// Build returns the document of the parent builder.
func (n *NodeBuilder) Build() *domain.Document {
	return n.builder.Build()
}

func (n *NodeBuilder) element() domain.Element {
	el := domain.Element{
		Tag:   n.id,
		Body:  n.text,
		Attrs: []domain.Attr{{Name: "type", Value: string(n.kind)}},
	}
	if n.speaker != "" {
		el.Attrs = append(el.Attrs, domain.Attr{Name: "who", Value: n.speaker})
	}
	switch n.kind {
	case domain.KindLine:
		if n.next != "" {
			el.Attrs = append(el.Attrs, domain.Attr{Name: "next", Value: n.next})
		}
	case domain.KindChoice:
		for i, o := range n.options {
			el.Attrs = append(el.Attrs, optionAttrs(i, o)...)
		}
	}
	return el
}
