package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventSessionStart   EventType = "session_start"
	EventSessionEnd     EventType = "session_end"
	EventSessionDiscard EventType = "session_discard"
	EventNodeEnter      EventType = "node_enter"
	EventNodeLeave      EventType = "node_leave"
	EventOptionSelected EventType = "option_selected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	TreeID    string    `json:"tree_id"`
}

// SessionEvent marks the start, completion or discard of a conversation.
type SessionEvent struct {
	EventBase
}

// NodeEvent represents entry or exit from a node.
type NodeEvent struct {
	EventBase
	NodeID   string `json:"node_id"`
	NodeKind Kind   `json:"node_kind"`
}

// OptionEvent represents the selection of a choice option.
type OptionEvent struct {
	EventBase
	NodeID string `json:"node_id"`
	Index  int    `json:"index"`
	Label  string `json:"label"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnSessionStart   func(*SessionEvent)
	OnSessionEnd     func(*SessionEvent)
	OnSessionDiscard func(*SessionEvent)
	OnNodeEnter      func(*NodeEvent)
	OnNodeLeave      func(*NodeEvent)
	OnOptionSelected func(*OptionEvent)
}
