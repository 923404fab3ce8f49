package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/parley/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the Source.
const DefaultPrefix = "parley:"

// Source implements ports.DocumentSource on Redis.
// A document is stored as a string at <prefix><kind>:doc:<name>, and the names
// of each kind are tracked in the set <prefix><kind>:index.
type Source struct {
	client *backend.Client
	prefix string
}

// Option configures the Source.
type Option func(*Source)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Source) {
		s.prefix = prefix
	}
}

// New creates a Source connected to addr.
func New(addr, password string, db int, opts ...Option) *Source {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Source using an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	s := &Source{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) key(kind domain.DocumentKind, name string) string {
	return s.prefix + string(kind) + ":doc:" + name
}

func (s *Source) indexKey(kind domain.DocumentKind) string {
	return s.prefix + string(kind) + ":index"
}

// Get returns the raw document stored under kind and name.
func (s *Source) Get(ctx context.Context, kind domain.DocumentKind, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(kind, name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, &domain.NotFoundError{Kind: kind, Name: name}
		}
		return nil, fmt.Errorf("failed to get %s document %q: %w", kind, name, err)
	}
	return data, nil
}

// List returns the sorted names of a kind.
func (s *Source) List(ctx context.Context, kind domain.DocumentKind) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey(kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", kind, err)
	}
	sort.Strings(names)
	return names, nil
}

// Put stores a document and indexes its name.
func (s *Source) Put(ctx context.Context, kind domain.DocumentKind, name string, data []byte) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(kind, name), data, 0)
	pipe.SAdd(ctx, s.indexKey(kind), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to put %s document %q: %w", kind, name, err)
	}
	return nil
}

// Delete removes a document and its index entry. Deleting a missing document is not an error.
func (s *Source) Delete(ctx context.Context, kind domain.DocumentKind, name string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(kind, name))
	pipe.SRem(ctx, s.indexKey(kind), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s document %q: %w", kind, name, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Source) Close() error {
	return s.client.Close()
}
