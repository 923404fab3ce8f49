package ports

// InputSource emits the "advance" event (confirm key, click, ...).
type InputSource interface {
	// OnAdvance subscribes fn to the advance event.
	OnAdvance(fn func())
}

// Host is the application hosting the conversation.
type Host interface {
	// Lock suspends unrelated input handling (e.g. movement) while a conversation runs.
	Lock()

	// Unlock releases what Lock suspended.
	Unlock()
}
