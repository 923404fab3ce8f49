package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// DocumentSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.DocumentSource.
// setupData must already be stored in source.
func DocumentSourceContractTest(t *testing.T, source ports.DocumentSource, setupData map[domain.DocumentRef][]byte) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Success", func(t *testing.T) {
		for ref, expected := range setupData {
			content, err := source.Get(ctx, ref.Kind, ref.Name)
			if err != nil {
				t.Fatalf("unexpected error getting %s %s: %v", ref.Kind, ref.Name, err)
			}
			if string(content) != string(expected) {
				t.Errorf("content mismatch for %s %s. got %q, want %q", ref.Kind, ref.Name, content, expected)
			}
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := source.Get(ctx, domain.DocumentTree, "non-existent-document")
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected *domain.NotFoundError, got %v", err)
		}
	})

	t.Run("Kinds_Are_Separate", func(t *testing.T) {
		for ref := range setupData {
			other := domain.DocumentPairs
			if ref.Kind == domain.DocumentPairs {
				other = domain.DocumentTree
			}
			if _, ok := setupData[domain.DocumentRef{Kind: other, Name: ref.Name}]; ok {
				continue
			}
			if _, err := source.Get(ctx, other, ref.Name); err == nil {
				t.Errorf("%s %s should not be visible as %s", ref.Kind, ref.Name, other)
			}
		}
	})

	t.Run("List", func(t *testing.T) {
		for _, kind := range []domain.DocumentKind{domain.DocumentPairs, domain.DocumentTree} {
			names, err := source.List(ctx, kind)
			if err != nil {
				t.Fatalf("unexpected error listing %s: %v", kind, err)
			}

			lookup := make(map[string]bool)
			for _, n := range names {
				lookup[n] = true
			}

			expected := 0
			for ref := range setupData {
				if ref.Kind != kind {
					continue
				}
				expected++
				if !lookup[ref.Name] {
					t.Errorf("%s %s missing from list", kind, ref.Name)
				}
			}
			if len(names) != expected {
				t.Errorf("expected %d %s documents, got %d (%v)", expected, kind, len(names), names)
			}
		}
	})
}
