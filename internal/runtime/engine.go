package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/google/uuid"
)

// TreeLookup resolves a tree identifier to a built tree.
type TreeLookup interface {
	Lookup(id string) (*domain.Tree, error)
}

// session is the cursor of the running conversation.
// It keeps its own tree pointer so replacing the tree in the registry
// does not affect a conversation already in flight.
type session struct {
	id   string
	tree *domain.Tree
	node *domain.Node
}

// Engine is the traversal state machine. It is either idle or holds exactly
// one active session. Engine is not safe for concurrent use: every
// operation is expected to run to completion on the caller's event loop.
type Engine struct {
	trees     TreeLookup
	presenter ports.Presenter
	host      ports.Host
	hooks     domain.LifecycleHooks
	logger    *slog.Logger

	current *session
}

// Option configures the Engine.
type Option func(*Engine)

// WithPresenter sets the presentation collaborator.
// Without one the engine runs headless and no slot limit applies.
func WithPresenter(p ports.Presenter) Option {
	return func(e *Engine) {
		e.presenter = p
	}
}

// WithHost sets the host exclusivity collaborator.
func WithHost(h ports.Host) Option {
	return func(e *Engine) {
		e.host = h
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger configures the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an idle engine reading trees from lookup.
func NewEngine(trees TreeLookup, opts ...Option) *Engine {
	e := &Engine{
		trees:  trees,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Active reports whether a conversation is running.
func (e *Engine) Active() bool {
	return e.current != nil
}

// Current returns the active node, or nil when idle.
func (e *Engine) Current() *domain.Node {
	if e.current == nil {
		return nil
	}
	return e.current.node
}

// SessionID returns the identifier of the running session, or "" when idle.
func (e *Engine) SessionID() string {
	if e.current == nil {
		return ""
	}
	return e.current.id
}

// TreeID returns the tree of the running session, or "" when idle.
func (e *Engine) TreeID() string {
	if e.current == nil {
		return ""
	}
	return e.current.tree.ID
}

// Start begins a conversation at the root of treeID.
// A running session is discarded without clearing the presenter or
// releasing the host; only an OnSessionDiscard event reports it.
func (e *Engine) Start(treeID string) error {
	tree, err := e.trees.Lookup(treeID)
	if err != nil {
		return err
	}
	if tree.Root == nil {
		return fmt.Errorf("tree %q has no nodes", treeID)
	}
	if err := e.checkPresentable(tree.Root); err != nil {
		return err
	}

	wasIdle := e.current == nil
	if !wasIdle {
		e.discard()
	}

	e.current = &session{id: uuid.NewString(), tree: tree}
	e.logger.Debug("session started", "session_id", e.current.id, "tree", tree.ID)
	e.emitSession(domain.EventSessionStart, e.hooks.OnSessionStart)

	if wasIdle && e.host != nil {
		e.host.Lock()
	}

	e.enter(tree.Root)
	return nil
}

// Bind subscribes the engine to the advance events of input.
// Events received while idle are ignored.
func (e *Engine) Bind(input ports.InputSource) {
	input.OnAdvance(func() {
		if !e.Active() {
			return
		}
		if err := e.Advance(); err != nil {
			e.logger.Warn("advance failed", "err", err)
		}
	})
}

func (e *Engine) discard() {
	old := e.current
	old.node.ClearChoice()
	e.logger.Debug("session discarded", "session_id", old.id, "tree", old.tree.ID, "node_id", old.node.ID)
	e.emitSession(domain.EventSessionDiscard, e.hooks.OnSessionDiscard)
	e.current = nil
}

func (e *Engine) finish() {
	e.logger.Debug("session completed", "session_id", e.current.id, "tree", e.current.tree.ID)
	e.emitSession(domain.EventSessionEnd, e.hooks.OnSessionEnd)
	e.current = nil

	e.clearPresenter()
	if e.host != nil {
		e.host.Unlock()
	}
}

func (e *Engine) checkPresentable(node *domain.Node) error {
	if e.presenter == nil || node == nil || node.Kind != domain.KindChoice {
		return nil
	}
	slots := len(e.presenter.Slots())
	if len(node.Options) > slots {
		return &domain.TooManyOptionsError{NodeID: node.ID, Options: len(node.Options), Slots: slots}
	}
	return nil
}
