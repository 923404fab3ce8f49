package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/fsnotify/fsnotify"
)

// Extensions are tried in this order when a document is requested.
var Extensions = []string{".xml", ".yaml", ".yml"}

// Source implements ports.DocumentSource and ports.Watchable on the local filesystem.
// Documents live in <root>/pairs and <root>/trees by default.
type Source struct {
	root     string
	pairsDir string
	treesDir string
	logger   *slog.Logger
}

// Option configures the Source.
type Option func(*Source)

// WithSubdirs overrides the directory names (relative to root) of each kind.
func WithSubdirs(pairs, trees string) Option {
	return func(s *Source) {
		s.pairsDir = pairs
		s.treesDir = trees
	}
}

// WithLogger configures the logger used by the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a new Source rooted at root.
func New(root string, opts ...Option) *Source {
	s := &Source{
		root:     root,
		pairsDir: "pairs",
		treesDir: "trees",
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) dir(kind domain.DocumentKind) string {
	if kind == domain.DocumentPairs {
		return filepath.Join(s.root, s.pairsDir)
	}
	return filepath.Join(s.root, s.treesDir)
}

// Get reads <dir>/<name>.<ext> for the first supported extension that exists.
func (s *Source) Get(ctx context.Context, kind domain.DocumentKind, name string) ([]byte, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("invalid document name %q", name)
	}

	for _, ext := range Extensions {
		path := filepath.Join(s.dir(kind), name+ext)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return nil, &domain.NotFoundError{Kind: kind, Name: name}
}

// List returns the document names of a kind. A missing directory is empty.
func (s *Source) List(ctx context.Context, kind domain.DocumentKind) ([]string, error) {
	entries, err := os.ReadDir(s.dir(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list %s documents: %w", kind, err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name, ok := documentName(e.Name())
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Watch reports every written or created document until ctx is done.
func (s *Source) Watch(ctx context.Context) (<-chan domain.DocumentRef, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	watched := 0
	for _, kind := range []domain.DocumentKind{domain.DocumentPairs, domain.DocumentTree} {
		dir := s.dir(kind)
		if _, err := os.Stat(dir); err != nil {
			s.logger.Debug("document directory not watched", "dir", dir, "err", err)
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		_ = w.Close()
		return nil, fmt.Errorf("no document directory to watch under %s", s.root)
	}

	out := make(chan domain.DocumentRef, 16)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				ref, ok := s.refFor(ev.Name)
				if !ok {
					continue
				}
				select {
				case out <- ref:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("document watcher error", "err", err)
			}
		}
	}()

	return out, nil
}

func (s *Source) refFor(path string) (domain.DocumentRef, bool) {
	name, ok := documentName(filepath.Base(path))
	if !ok {
		return domain.DocumentRef{}, false
	}
	dir := filepath.Clean(filepath.Dir(path))
	switch dir {
	case filepath.Clean(s.dir(domain.DocumentPairs)):
		return domain.DocumentRef{Kind: domain.DocumentPairs, Name: name}, true
	case filepath.Clean(s.dir(domain.DocumentTree)):
		return domain.DocumentRef{Kind: domain.DocumentTree, Name: name}, true
	}
	return domain.DocumentRef{}, false
}

func documentName(base string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(base))
	for _, supported := range Extensions {
		if ext == supported {
			return strings.TrimSuffix(base, filepath.Ext(base)), true
		}
	}
	return "", false
}
