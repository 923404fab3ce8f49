// Package testutils provides fake collaborators for traversal tests.
package testutils

import (
	"github.com/aretw0/parley/pkg/ports"
)

// FakeSlot records the state of one selectable slot.
type FakeSlot struct {
	Active   bool
	Label    string
	OnSelect func()
}

// Activate implements ports.Slot.
func (s *FakeSlot) Activate(label string, onSelect func()) {
	s.Active = true
	s.Label = label
	s.OnSelect = onSelect
}

// Deactivate implements ports.Slot. The callback is kept so tests can fire stale selections.
func (s *FakeSlot) Deactivate() {
	s.Active = false
	s.Label = ""
}

// Press fires the slot callback as a UI would.
func (s *FakeSlot) Press() {
	if s.OnSelect != nil {
		s.OnSelect()
	}
}

// FakePresenter is an in-memory ports.Presenter.
type FakePresenter struct {
	Speaker string
	Line    string
	Items   []*FakeSlot

	// Calls counts SetSpeaker and SetLine invocations.
	Calls int
}

// NewFakePresenter creates a presenter with n slots.
func NewFakePresenter(n int) *FakePresenter {
	p := &FakePresenter{Items: make([]*FakeSlot, n)}
	for i := range p.Items {
		p.Items[i] = &FakeSlot{}
	}
	return p
}

// SetSpeaker implements ports.Presenter.
func (p *FakePresenter) SetSpeaker(text string) {
	p.Calls++
	p.Speaker = text
}

// SetLine implements ports.Presenter.
func (p *FakePresenter) SetLine(text string) {
	p.Calls++
	p.Line = text
}

// Slots implements ports.Presenter.
func (p *FakePresenter) Slots() []ports.Slot {
	slots := make([]ports.Slot, len(p.Items))
	for i, s := range p.Items {
		slots[i] = s
	}
	return slots
}

// ActiveLabels returns the labels of the active slots in order.
func (p *FakePresenter) ActiveLabels() []string {
	labels := []string{}
	for _, s := range p.Items {
		if s.Active {
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// FakeHost counts lock requests.
type FakeHost struct {
	Locks   int
	Unlocks int
}

// Lock implements ports.Host.
func (h *FakeHost) Lock() { h.Locks++ }

// Unlock implements ports.Host.
func (h *FakeHost) Unlock() { h.Unlocks++ }

// Locked reports whether more locks than unlocks were requested.
func (h *FakeHost) Locked() bool { return h.Locks > h.Unlocks }

// FakeInput is a ports.InputSource driven by the test.
type FakeInput struct {
	handlers []func()
}

// OnAdvance implements ports.InputSource.
func (i *FakeInput) OnAdvance(fn func()) {
	i.handlers = append(i.handlers, fn)
}

// Fire emits one advance event.
func (i *FakeInput) Fire() {
	for _, fn := range i.handlers {
		fn()
	}
}
