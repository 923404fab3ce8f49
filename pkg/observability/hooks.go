package observability

import (
	"log/slog"

	"github.com/aretw0/parley/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every event at INFO.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	session := func(e *domain.SessionEvent) {
		logger.Info(string(e.Type), "session_id", e.SessionID, "tree", e.TreeID)
	}
	node := func(e *domain.NodeEvent) {
		logger.Info(string(e.Type), "session_id", e.SessionID, "tree", e.TreeID, "node_id", e.NodeID, "kind", e.NodeKind)
	}
	return domain.LifecycleHooks{
		OnSessionStart:   session,
		OnSessionEnd:     session,
		OnSessionDiscard: session,
		OnNodeEnter:      node,
		OnNodeLeave:      node,
		OnOptionSelected: func(e *domain.OptionEvent) {
			logger.Info(string(e.Type), "session_id", e.SessionID, "tree", e.TreeID,
				"node_id", e.NodeID, "index", e.Index, "label", e.Label)
		},
	}
}

// MergeHooks fans every event out to each hook set, in order.
func MergeHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var merged domain.LifecycleHooks
	for _, h := range sets {
		merged.OnSessionStart = chain(merged.OnSessionStart, h.OnSessionStart)
		merged.OnSessionEnd = chain(merged.OnSessionEnd, h.OnSessionEnd)
		merged.OnSessionDiscard = chain(merged.OnSessionDiscard, h.OnSessionDiscard)
		merged.OnNodeEnter = chain(merged.OnNodeEnter, h.OnNodeEnter)
		merged.OnNodeLeave = chain(merged.OnNodeLeave, h.OnNodeLeave)
		merged.OnOptionSelected = chain(merged.OnOptionSelected, h.OnOptionSelected)
	}
	return merged
}

func chain[E any](first, second func(E)) func(E) {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return func(e E) {
		first(e)
		second(e)
	}
}
