// Package registry keeps every loaded conversation tree for the lifetime of the process.
package registry

import (
	"sort"
	"sync"

	"github.com/aretw0/parley/pkg/domain"
)

// Registry maps tree identifiers to built conversation trees.
// Trees are never evicted. Safe for concurrent use, so a reload
// goroutine may register while the engine looks trees up.
type Registry struct {
	mu    sync.RWMutex
	trees map[string]*domain.Tree
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		trees: make(map[string]*domain.Tree),
	}
}

// Register stores a tree under id.
// If a tree with the same id exists, it is replaced. Sessions already
// walking the old tree keep their own cursor into it.
func (r *Registry) Register(id string, tree *domain.Tree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trees[id] = tree
}

// Lookup returns the tree registered under id.
// Returns a *domain.NotFoundError if it was never registered.
func (r *Registry) Lookup(id string) (*domain.Tree, error) {
	r.mu.RLock()
	tree, ok := r.trees[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &domain.NotFoundError{Kind: domain.DocumentTree, Name: id}
	}
	return tree, nil
}

// List returns the registered identifiers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.trees))
	for id := range r.trees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
