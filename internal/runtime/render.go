package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
)

// present pushes the display state of node to the presenter.
// Slot capacity has already been checked by the caller.
func (e *Engine) present(node *domain.Node) {
	if e.presenter == nil {
		return
	}

	e.presenter.SetSpeaker(node.Speaker)
	e.presenter.SetLine(node.Text)

	slots := e.presenter.Slots()
	used := 0
	if node.Kind == domain.KindChoice {
		for i, opt := range node.Options {
			owner, index := node, i
			slots[i].Activate(opt.Label, func() { e.selectFromSlot(owner, index) })
		}
		used = len(node.Options)
	}
	for _, slot := range slots[used:] {
		slot.Deactivate()
	}
}

func (e *Engine) clearPresenter() {
	if e.presenter == nil {
		return
	}
	e.presenter.SetSpeaker("")
	e.presenter.SetLine("")
	for _, slot := range e.presenter.Slots() {
		slot.Deactivate()
	}
}

// RenderTree describes the line chain starting at the root of treeID,
// one node per line. It stops at the first choice or terminal line and
// never follows option edges nor touches selections.
func (e *Engine) RenderTree(treeID string) (string, error) {
	tree, err := e.trees.Lookup(treeID)
	if err != nil {
		return "", err
	}
	return RenderTree(tree), nil
}

// RenderTree is the engine-independent form of Engine.RenderTree.
func RenderTree(tree *domain.Tree) string {
	var b strings.Builder
	seen := make(map[*domain.Node]bool)

	for node := tree.Root; node != nil; node = node.Next {
		if seen[node] {
			fmt.Fprintf(&b, "(loops back to %s)\n", node.ID)
			break
		}
		seen[node] = true

		fmt.Fprintf(&b, "[%s] %s\n", node.ID, describe(node))
		if node.Kind == domain.KindChoice {
			break
		}
		if node.Next == nil {
			b.WriteString("(end)\n")
		}
	}
	return b.String()
}

func describe(node *domain.Node) string {
	text := node.Text
	if node.Speaker != "" {
		text = node.Speaker + ": " + text
	}
	if node.Kind != domain.KindChoice {
		return text
	}

	labels := make([]string, len(node.Options))
	for i, opt := range node.Options {
		labels[i] = opt.Label
	}
	return fmt.Sprintf("%s {%s}", text, strings.Join(labels, " | "))
}
