package runtime

import (
	"time"

	"github.com/aretw0/parley/pkg/domain"
)

// Advance moves the cursor to the successor of the active node.
// It is a no-op on a choice that has not been answered yet. Leaving a
// terminal line ends the session.
func (e *Engine) Advance() error {
	if e.current == nil {
		return domain.ErrNoActiveSession
	}

	node := e.current.node
	if !node.HasNext() {
		e.logger.Debug("advance ignored", "node_id", node.ID)
		return nil
	}

	next := node.NextNode()
	if err := e.checkPresentable(next); err != nil {
		return err
	}

	e.leave(node)
	if next == nil {
		e.finish()
		return nil
	}
	e.enter(next)
	return nil
}

// SelectOption answers the active choice with option index and advances.
// On error the session and the selection are left unchanged.
func (e *Engine) SelectOption(index int) error {
	if e.current == nil {
		return domain.ErrNoActiveSession
	}

	node := e.current.node
	if node.Kind != domain.KindChoice {
		return domain.ErrNotChoice
	}
	if index < 0 || index >= len(node.Options) {
		return &domain.IndexOutOfRangeError{NodeID: node.ID, Index: index, Len: len(node.Options)}
	}
	if err := e.checkPresentable(node.Options[index].Target); err != nil {
		return err
	}

	if err := node.Choose(index); err != nil {
		return err
	}
	if e.hooks.OnOptionSelected != nil {
		e.hooks.OnOptionSelected(&domain.OptionEvent{
			EventBase: e.event(domain.EventOptionSelected),
			NodeID:    node.ID,
			Index:     index,
			Label:     node.Options[index].Label,
		})
	}
	return e.Advance()
}

// selectFromSlot is the callback bound to an activated slot.
func (e *Engine) selectFromSlot(owner *domain.Node, index int) {
	if e.current == nil || e.current.node != owner {
		e.logger.Debug("stale slot selection ignored", "node_id", owner.ID, "index", index)
		return
	}
	if err := e.SelectOption(index); err != nil {
		e.logger.Warn("option selection failed", "node_id", owner.ID, "index", index, "err", err)
	}
}

func (e *Engine) enter(node *domain.Node) {
	node.ClearChoice()
	e.current.node = node
	e.logger.Debug("node entered", "session_id", e.current.id, "node_id", node.ID, "kind", node.Kind)
	e.emitNode(domain.EventNodeEnter, e.hooks.OnNodeEnter, node)
	e.present(node)
}

func (e *Engine) leave(node *domain.Node) {
	e.emitNode(domain.EventNodeLeave, e.hooks.OnNodeLeave, node)
	node.ClearChoice()
}

func (e *Engine) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		SessionID: e.current.id,
		TreeID:    e.current.tree.ID,
	}
}

func (e *Engine) emitSession(t domain.EventType, hook func(*domain.SessionEvent)) {
	if hook == nil {
		return
	}
	hook(&domain.SessionEvent{EventBase: e.event(t)})
}

func (e *Engine) emitNode(t domain.EventType, hook func(*domain.NodeEvent), node *domain.Node) {
	if hook == nil {
		return
	}
	hook(&domain.NodeEvent{EventBase: e.event(t), NodeID: node.ID, NodeKind: node.Kind})
}
