package ports

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
)

// DocumentSource defines how raw documents are retrieved.
// This allows the storage layer (memory, files, Redis) to be decoupled.
type DocumentSource interface {
	// Get returns the raw bytes of a document.
	// It returns a *domain.NotFoundError if the document does not exist.
	Get(ctx context.Context, kind domain.DocumentKind, name string) ([]byte, error)

	// List returns the names of every document of a kind, sorted.
	List(ctx context.Context, kind domain.DocumentKind) ([]string, error)
}

// Watchable defines an interface for sources that can notify about backend changes.
// This is used for hot-reload of trees and pairs.
type Watchable interface {
	// Watch returns a channel that receives a reference for every changed document.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan domain.DocumentRef, error)
}
