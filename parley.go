package parley

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/parley/internal/compiler"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/internal/runtime"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/i18n"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/registry"
)

// ErrNoSource is returned by loading operations when no DocumentSource was configured.
var ErrNoSource = errors.New("no document source configured")

// Engine is the high-level entry point of the library. It owns the
// localization table, the tree registry and the traversal engine.
// Loading is safe to run concurrently with traversal; traversal itself
// (Start, Advance, SelectOption) must be driven from a single goroutine.
type Engine struct {
	source     ports.DocumentSource
	presenter  ports.Presenter
	host       ports.Host
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	maxOptions int

	table    *i18n.Table
	registry *registry.Registry
	parser   *compiler.Parser
	runtime  *runtime.Engine
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSource sets where pairs and tree documents are read from.
func WithSource(src ports.DocumentSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithPresenter sets the presentation collaborator.
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

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxOptions rejects, at load time, choices with more than n options.
func WithMaxOptions(n int) Option {
	return func(e *Engine) {
		e.maxOptions = n
	}
}

// New creates an engine with an empty table and registry.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	e.table = i18n.NewTable()
	e.registry = registry.NewRegistry()
	e.parser = compiler.NewParser()

	runtimeOpts := []runtime.Option{
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger.With("component", "runtime")),
	}
	if e.presenter != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithPresenter(e.presenter))
	}
	if e.host != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithHost(e.host))
	}
	e.runtime = runtime.NewEngine(e.registry, runtimeOpts...)

	return e
}

// LoadPairs reads a pairs document and merges it into the localization table.
// A document that fails to parse leaves the table untouched.
func (e *Engine) LoadPairs(ctx context.Context, name string) error {
	doc, err := e.fetch(ctx, domain.DocumentPairs, name)
	if err != nil {
		return err
	}
	e.table.Load(doc)
	e.logger.Debug("pairs loaded", "document", name, "entries", len(doc.Elements))
	return nil
}

// LoadTree reads, builds and registers a tree document.
// Texts are resolved against the pairs loaded so far.
func (e *Engine) LoadTree(ctx context.Context, name string) (*domain.Tree, error) {
	doc, err := e.fetch(ctx, domain.DocumentTree, name)
	if err != nil {
		return nil, err
	}
	return e.Compile(doc)
}

// Compile builds and registers an in-memory tree document (see package dsl).
// A document without any valid element yields a tree with a nil Root,
// which is returned but not registered.
func (e *Engine) Compile(doc *domain.Document) (*domain.Tree, error) {
	builder := compiler.NewBuilder(e.table,
		compiler.WithMaxOptions(e.maxOptions),
		compiler.WithLogger(e.logger.With("component", "compiler")),
	)

	tree, err := builder.Build(doc)
	if err != nil {
		e.logger.Error("tree build failed", "document", doc.Name, "err", err)
		return nil, err
	}
	if tree.Root == nil {
		e.logger.Warn("tree document has no dialog nodes, not registered", "document", doc.Name)
		return tree, nil
	}

	e.registry.Register(doc.Name, tree)
	e.logger.Debug("tree registered", "tree", doc.Name, "nodes", len(tree.Nodes))
	return tree, nil
}

// LoadAll loads every pairs document, then every tree document.
// A nil list loads every document of that kind the source lists.
// A failing document does not stop the others; all failures are joined.
func (e *Engine) LoadAll(ctx context.Context, pairs, trees []string) error {
	if e.source == nil {
		return ErrNoSource
	}

	var errs []error
	pairs, err := e.names(ctx, domain.DocumentPairs, pairs)
	if err != nil {
		errs = append(errs, err)
	}
	for _, name := range pairs {
		if err := e.LoadPairs(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}

	trees, err = e.names(ctx, domain.DocumentTree, trees)
	if err != nil {
		errs = append(errs, err)
	}
	for _, name := range trees {
		if _, err := e.LoadTree(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (e *Engine) names(ctx context.Context, kind domain.DocumentKind, given []string) ([]string, error) {
	if given != nil {
		return given, nil
	}
	return e.source.List(ctx, kind)
}

func (e *Engine) fetch(ctx context.Context, kind domain.DocumentKind, name string) (*domain.Document, error) {
	if e.source == nil {
		return nil, ErrNoSource
	}

	data, err := e.source.Get(ctx, kind, name)
	if err != nil {
		e.logger.Error("document unavailable", "document", name, "kind", kind, "err", err)
		return nil, err
	}

	doc, err := e.parser.Parse(name, data)
	if err != nil {
		e.logger.Error("document load failed", "document", name, "kind", kind, "err", err)
		return nil, err
	}
	return doc, nil
}

// Start begins the conversation treeID, discarding any running one.
func (e *Engine) Start(treeID string) error {
	return e.runtime.Start(treeID)
}

// Advance moves past the active node. It is a no-op on an unanswered choice.
func (e *Engine) Advance() error {
	return e.runtime.Advance()
}

// SelectOption answers the active choice and advances.
func (e *Engine) SelectOption(index int) error {
	return e.runtime.SelectOption(index)
}

// Active reports whether a conversation is running.
func (e *Engine) Active() bool {
	return e.runtime.Active()
}

// Current returns the active node, or nil when idle.
func (e *Engine) Current() *domain.Node {
	return e.runtime.Current()
}

// Bind subscribes the engine to the advance events of input.
func (e *Engine) Bind(input ports.InputSource) {
	e.runtime.Bind(input)
}

// RenderTree returns a diagnostic description of the line chain of treeID.
func (e *Engine) RenderTree(treeID string) (string, error) {
	return e.runtime.RenderTree(treeID)
}

// Tree returns a registered tree.
func (e *Engine) Tree(id string) (*domain.Tree, error) {
	return e.registry.Lookup(id)
}

// Trees returns the registered tree identifiers in sorted order.
func (e *Engine) Trees() []string {
	return e.registry.List()
}

// Resolve looks key up in the localization table, falling back to key.
func (e *Engine) Resolve(key string) string {
	return e.table.Resolve(key)
}

// Reload loads ref again. Because texts are resolved when a tree is built,
// reloading a pairs document also rebuilds every registered tree the source provides.
func (e *Engine) Reload(ctx context.Context, ref domain.DocumentRef) error {
	if ref.Kind == domain.DocumentTree {
		_, err := e.LoadTree(ctx, ref.Name)
		return err
	}

	if err := e.LoadPairs(ctx, ref.Name); err != nil {
		return err
	}

	available, err := e.source.List(ctx, domain.DocumentTree)
	if err != nil {
		return err
	}
	listed := make(map[string]bool, len(available))
	for _, name := range available {
		listed[name] = true
	}

	var errs []error
	for _, id := range e.registry.List() {
		if !listed[id] {
			continue
		}
		if _, err := e.LoadTree(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Watch reloads documents as the source reports changes, until ctx is done.
// The returned channel carries every successfully reloaded document.
func (e *Engine) Watch(ctx context.Context) (<-chan domain.DocumentRef, error) {
	w, ok := e.source.(ports.Watchable)
	if !ok {
		return nil, fmt.Errorf("document source %T does not support watching", e.source)
	}

	changes, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan domain.DocumentRef)
	go func() {
		defer close(out)
		for ref := range changes {
			if err := e.Reload(ctx, ref); err != nil {
				e.logger.Warn("reload failed", "document", ref.Name, "kind", ref.Kind, "err", err)
				continue
			}
			e.logger.Info("document reloaded", "document", ref.Name, "kind", ref.Kind)
			select {
			case out <- ref:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
