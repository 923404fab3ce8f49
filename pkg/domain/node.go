package domain

// Kind tags the variant of a Node.
type Kind string

// Node kinds. The values match the `type` attribute of tree documents.
const (
	// KindLine displays a single line and continues to its successor (if any).
	KindLine Kind = "showdialog"
	// KindChoice displays a prompt and waits for one of its options to be selected.
	KindChoice Kind = "choicedialog"
)

// NoChoice is the selection index of a Choice node that has not been answered.
const NoChoice = -1

// Option is a labelled edge of a Choice node.
type Option struct {
	Label  string
	Target *Node
}

// Node represents one conversation step.
// It is a tagged union: Next is only meaningful for KindLine,
// Options (and the selection) only for KindChoice.
type Node struct {
	ID      string
	Kind    Kind
	Speaker string
	Text    string

	// Next is the successor of a Line node. Nil marks a terminal line.
	Next *Node

	// Options are the ordered choices of a Choice node.
	Options []Option

	chosen int
}

// NewLine allocates an unlinked Line node.
func NewLine(id, speaker, text string) *Node {
	return &Node{ID: id, Kind: KindLine, Speaker: speaker, Text: text, chosen: NoChoice}
}

// NewChoice allocates a Choice node without options.
func NewChoice(id, speaker, text string) *Node {
	return &Node{ID: id, Kind: KindChoice, Speaker: speaker, Text: text, chosen: NoChoice}
}

// HasNext reports whether the traversal may leave this node.
// A Line can always be left (possibly into the end of the conversation);
// a Choice only after one of its options has been selected.
func (n *Node) HasNext() bool {
	switch n.Kind {
	case KindLine:
		return true
	case KindChoice:
		return n.chosen >= 0
	}
	return false
}

// NextNode returns the node the traversal moves to, or nil when the
// conversation ends here. It is only meaningful when HasNext is true.
func (n *Node) NextNode() *Node {
	switch n.Kind {
	case KindLine:
		return n.Next
	case KindChoice:
		if n.chosen >= 0 && n.chosen < len(n.Options) {
			return n.Options[n.chosen].Target
		}
	}
	return nil
}

// Choose records the selected option of a Choice node.
// On error the previous selection is kept.
func (n *Node) Choose(index int) error {
	if n.Kind != KindChoice {
		return ErrNotChoice
	}
	if index < 0 || index >= len(n.Options) {
		return &IndexOutOfRangeError{NodeID: n.ID, Index: index, Len: len(n.Options)}
	}
	n.chosen = index
	return nil
}

// Chosen returns the selected option index, or NoChoice.
func (n *Node) Chosen() int {
	if n.Kind != KindChoice {
		return NoChoice
	}
	return n.chosen
}

// ClearChoice forgets any selection.
func (n *Node) ClearChoice() {
	n.chosen = NoChoice
}

// IsTerminal reports whether the node is a Line without successor.
func (n *Node) IsTerminal() bool {
	return n.Kind == KindLine && n.Next == nil
}

// Tree is a conversation graph built from one tree document.
// Nodes holds every allocated node in document order; Root is Nodes[0].
type Tree struct {
	ID    string
	Root  *Node
	Nodes []*Node
}

// Node returns the node with the given identifier, or nil.
func (t *Tree) Node(id string) *Node {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
