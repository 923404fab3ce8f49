package domain

import (
	"errors"
	"fmt"
)

// ErrNoActiveSession is returned when a traversal operation is called while idle.
var ErrNoActiveSession = errors.New("no active conversation")

// ErrNotChoice is returned when an option is selected on a node that is not a choice.
var ErrNotChoice = errors.New("active node is not a choice")

// ParseError reports a malformed document.
type ParseError struct {
	Document string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse document %q: %v", e.Document, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnresolvedReferenceError reports a `next` or `choiceNode_i` naming an
// identifier not defined in the same document.
type UnresolvedReferenceError struct {
	Document string
	Element  string
	Target   string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("document %q: element %q references unknown node %q", e.Document, e.Element, e.Target)
}

// EmptyChoiceError reports a choice element without any option pair.
type EmptyChoiceError struct {
	Document string
	Element  string
}

func (e *EmptyChoiceError) Error() string {
	return fmt.Sprintf("document %q: choice %q has no options", e.Document, e.Element)
}

// OptionPairError reports a choice_i attribute without its choiceNode_i (or the reverse).
type OptionPairError struct {
	Document string
	Element  string
	Index    int
}

func (e *OptionPairError) Error() string {
	return fmt.Sprintf("document %q: choice %q has an incomplete option pair at index %d", e.Document, e.Element, e.Index)
}

// DuplicateNodeError reports two elements sharing an identifier.
type DuplicateNodeError struct {
	Document string
	Element  string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("document %q: node %q is defined more than once", e.Document, e.Element)
}

// NotFoundError reports an unknown tree or document.
type NotFoundError struct {
	Kind DocumentKind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// IndexOutOfRangeError reports an invalid option selection.
type IndexOutOfRangeError struct {
	NodeID string
	Index  int
	Len    int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("option %d out of range for node %q (%d options)", e.Index, e.NodeID, e.Len)
}

// TooManyOptionsError reports a choice with more options than presentation slots.
type TooManyOptionsError struct {
	NodeID  string
	Options int
	Slots   int
}

func (e *TooManyOptionsError) Error() string {
	return fmt.Sprintf("node %q has %d options but only %d slots are available", e.NodeID, e.Options, e.Slots)
}
