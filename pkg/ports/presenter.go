package ports

// Slot is one selectable option widget (e.g. a button).
type Slot interface {
	// Activate shows the slot with label; onSelect is called when it is chosen.
	Activate(label string, onSelect func())

	// Deactivate hides the slot.
	Deactivate()
}

// Presenter receives the display state of the active node.
// The engine only writes to it.
type Presenter interface {
	SetSpeaker(text string)
	SetLine(text string)

	// Slots returns the fixed, ordered list of selectable slots.
	Slots() []Slot
}
