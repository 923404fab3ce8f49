package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/parley/pkg/domain"
)

// Source implements ports.DocumentSource using an in-memory map.
type Source struct {
	mu   sync.RWMutex
	docs map[domain.DocumentRef][]byte
}

// NewSource creates a new Source with the provided raw documents.
func NewSource(pairs, trees map[string]string) *Source {
	s := &Source{
		docs: make(map[domain.DocumentRef][]byte),
	}
	for name, v := range pairs {
		s.docs[domain.DocumentRef{Kind: domain.DocumentPairs, Name: name}] = []byte(v)
	}
	for name, v := range trees {
		s.docs[domain.DocumentRef{Kind: domain.DocumentTree, Name: name}] = []byte(v)
	}
	return s
}

// Put stores (or replaces) a document.
func (s *Source) Put(kind domain.DocumentKind, name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[domain.DocumentRef{Kind: kind, Name: name}] = data
}

// Get retrieves the raw document.
func (s *Source) Get(ctx context.Context, kind domain.DocumentKind, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.docs[domain.DocumentRef{Kind: kind, Name: name}]
	if !ok {
		return nil, &domain.NotFoundError{Kind: kind, Name: name}
	}
	return content, nil
}

// List returns all document names of a kind.
func (s *Source) List(ctx context.Context, kind domain.DocumentKind) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for ref := range s.docs {
		if ref.Kind == kind {
			names = append(names, ref.Name)
		}
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}
