package runner

import (
	"fmt"
	"io"

	"github.com/aretw0/parley/pkg/ports"
	"github.com/muesli/termenv"
)

// DefaultSlots is the number of options a TextPresenter can show.
const DefaultSlots = 4

type textSlot struct {
	owner    *TextPresenter
	active   bool
	label    string
	onSelect func()
}

func (s *textSlot) Activate(label string, onSelect func()) {
	s.active = true
	s.label = label
	s.onSelect = onSelect
	s.owner.dirty = true
}

func (s *textSlot) Deactivate() {
	if s.active {
		s.owner.dirty = true
	}
	s.active = false
	s.label = ""
	s.onSelect = nil
}

// TextPresenter is a ports.Presenter that renders to a terminal.
// State is buffered until Render is called.
type TextPresenter struct {
	out     *termenv.Output
	speaker string
	line    string
	slots   []*textSlot
	dirty   bool
}

type presenterConfig struct {
	slots int
	color bool
}

// PresenterOption configures a TextPresenter.
type PresenterOption func(*presenterConfig)

// WithSlots sets the number of option slots.
func WithSlots(n int) PresenterOption {
	return func(c *presenterConfig) {
		c.slots = n
	}
}

// WithColor enables ANSI styling of the speaker and option numbers.
func WithColor(enabled bool) PresenterOption {
	return func(c *presenterConfig) {
		c.color = enabled
	}
}

// NewTextPresenter creates a presenter writing to w.
func NewTextPresenter(w io.Writer, opts ...PresenterOption) *TextPresenter {
	cfg := presenterConfig{slots: DefaultSlots}
	for _, opt := range opts {
		opt(&cfg)
	}

	profile := termenv.Ascii
	if cfg.color {
		profile = termenv.ANSI256
	}

	p := &TextPresenter{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		slots: make([]*textSlot, cfg.slots),
	}
	for i := range p.slots {
		p.slots[i] = &textSlot{owner: p}
	}
	return p
}

// SetSpeaker implements ports.Presenter.
func (p *TextPresenter) SetSpeaker(text string) {
	p.speaker = text
	p.dirty = true
}

// SetLine implements ports.Presenter.
func (p *TextPresenter) SetLine(text string) {
	p.line = text
	p.dirty = true
}

// Slots implements ports.Presenter.
func (p *TextPresenter) Slots() []ports.Slot {
	slots := make([]ports.Slot, len(p.slots))
	for i, s := range p.slots {
		slots[i] = s
	}
	return slots
}

// Options returns the labels of the active slots.
func (p *TextPresenter) Options() []string {
	labels := []string{}
	for _, s := range p.slots {
		if s.active {
			labels = append(labels, s.label)
		}
	}
	return labels
}

// Select fires the option numbered n (1-based, as rendered).
// It reports false when no active slot has that number.
func (p *TextPresenter) Select(n int) bool {
	if n < 1 || n > len(p.slots) {
		return false
	}
	s := p.slots[n-1]
	if !s.active || s.onSelect == nil {
		return false
	}
	s.onSelect()
	return true
}

// Render writes the pending display state, if it changed since the last call.
// A cleared presenter renders nothing.
func (p *TextPresenter) Render() error {
	if !p.dirty {
		return nil
	}
	p.dirty = false

	if p.line == "" && p.speaker == "" {
		return nil
	}

	if p.speaker != "" {
		name := p.out.String(p.speaker + ":").Bold().Foreground(p.out.Color("6"))
		if _, err := fmt.Fprintf(p.out, "%s %s\n", name, p.line); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(p.out, p.line); err != nil {
		return err
	}

	for i, s := range p.slots {
		if !s.active {
			continue
		}
		num := p.out.String(fmt.Sprintf("%d)", i+1)).Foreground(p.out.Color("3"))
		if _, err := fmt.Fprintf(p.out, "  %s %s\n", num, s.label); err != nil {
			return err
		}
	}
	return nil
}
