package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Push copies every document of from into to.
func Push(ctx context.Context, from ports.DocumentSource, to Putter, w io.Writer) (int, error) {
	count := 0
	for _, kind := range []domain.DocumentKind{domain.DocumentPairs, domain.DocumentTree} {
		names, err := from.List(ctx, kind)
		if err != nil {
			return count, err
		}
		for _, name := range names {
			data, err := from.Get(ctx, kind, name)
			if err != nil {
				return count, err
			}
			if err := to.Put(ctx, kind, name, data); err != nil {
				return count, err
			}
			fmt.Fprintf(w, "pushed %s/%s\n", kind, name)
			count++
		}
	}
	return count, nil
}

// Putter stores documents. The Redis source implements it.
type Putter interface {
	Put(ctx context.Context, kind domain.DocumentKind, name string, data []byte) error
}
