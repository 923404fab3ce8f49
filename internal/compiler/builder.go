// Package compiler decodes pairs and tree documents and links them into conversation graphs.
package compiler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
)

// Resolver maps a text key to its displayed string.
type Resolver interface {
	Resolve(key string) string
}

type identity struct{}

func (identity) Resolve(key string) string { return key }

// Builder links a tree document into a conversation graph.
type Builder struct {
	resolver   Resolver
	maxOptions int
	logger     *slog.Logger
}

// BuildOption configures the Builder.
type BuildOption func(*Builder)

// WithMaxOptions rejects choices with more than n options at build time.
// Zero disables the check.
func WithMaxOptions(n int) BuildOption {
	return func(b *Builder) {
		b.maxOptions = n
	}
}

// WithLogger configures the logger used for non-fatal warnings.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a builder resolving texts through r (nil keeps texts raw).
func NewBuilder(r Resolver, opts ...BuildOption) *Builder {
	if r == nil {
		r = identity{}
	}
	b := &Builder{
		resolver: r,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build allocates every node of the document and then links them.
// The first allocated node becomes the root; a document without valid
// elements yields a tree with a nil Root. On error no tree is returned.
func (b *Builder) Build(doc *domain.Document) (*domain.Tree, error) {
	tree := &domain.Tree{ID: doc.Name}

	// Pass 1: allocate. byName is only valid during the build.
	byName := make(map[string]*domain.Node, len(doc.Elements))
	allocated := make([]*domain.Node, len(doc.Elements))

	for i, el := range doc.Elements {
		typ, _ := el.Attr("type")
		speaker, _ := el.Attr("who")
		id := el.ID()
		text := b.resolver.Resolve(el.Body)

		var node *domain.Node
		switch domain.Kind(strings.ToLower(strings.TrimSpace(typ))) {
		case domain.KindLine:
			node = domain.NewLine(id, speaker, text)
		case domain.KindChoice:
			node = domain.NewChoice(id, speaker, text)
		default:
			b.logger.Warn("unknown dialog type, element skipped",
				"document", doc.Name,
				"element", id,
				"type", typ)
			continue
		}

		if _, dup := byName[id]; dup {
			return nil, &domain.DuplicateNodeError{Document: doc.Name, Element: id}
		}
		byName[id] = node
		allocated[i] = node
		tree.Nodes = append(tree.Nodes, node)
		if tree.Root == nil {
			tree.Root = node
		}
	}

	// Pass 2: link.
	for i, el := range doc.Elements {
		node := allocated[i]
		if node == nil {
			continue
		}

		switch node.Kind {
		case domain.KindLine:
			next, _ := el.Attr("next")
			if next == "" {
				continue
			}
			target, ok := byName[next]
			if !ok {
				return nil, &domain.UnresolvedReferenceError{Document: doc.Name, Element: node.ID, Target: next}
			}
			node.Next = target

		case domain.KindChoice:
			options, err := b.linkOptions(doc.Name, node.ID, el, byName)
			if err != nil {
				return nil, err
			}
			node.Options = options
		}
	}

	return tree, nil
}

func (b *Builder) linkOptions(docName, nodeID string, el domain.Element, byName map[string]*domain.Node) ([]domain.Option, error) {
	var options []domain.Option
	for i := 0; ; i++ {
		label, hasLabel := el.Attr(fmt.Sprintf("choice_%d", i))
		targetID, hasTarget := el.Attr(fmt.Sprintf("choiceNode_%d", i))
		if !hasLabel && !hasTarget {
			break
		}
		if hasLabel != hasTarget {
			return nil, &domain.OptionPairError{Document: docName, Element: nodeID, Index: i}
		}
		target, ok := byName[targetID]
		if !ok {
			return nil, &domain.UnresolvedReferenceError{Document: docName, Element: nodeID, Target: targetID}
		}
		options = append(options, domain.Option{Label: label, Target: target})
	}

	// Pairs are numbered consecutively; one declared past a gap is an error.
	for _, a := range el.Attrs {
		if k, ok := optionIndex(a.Name); ok && k >= len(options) {
			return nil, &domain.OptionPairError{Document: docName, Element: nodeID, Index: len(options)}
		}
	}

	if len(options) == 0 {
		return nil, &domain.EmptyChoiceError{Document: docName, Element: nodeID}
	}
	if b.maxOptions > 0 && len(options) > b.maxOptions {
		return nil, &domain.TooManyOptionsError{NodeID: nodeID, Options: len(options), Slots: b.maxOptions}
	}
	return options, nil
}

// optionIndex extracts i from a choice_i or choiceNode_i attribute name.
func optionIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "choiceNode_")
	if !ok {
		rest, ok = strings.CutPrefix(name, "choice_")
	}
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
