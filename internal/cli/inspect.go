package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/parley/internal/config"
	"github.com/aretw0/parley/internal/presentation/graph"
	"github.com/aretw0/parley/internal/runtime"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// ErrInvalidDocuments is returned by Validate when at least one document failed to load.
var ErrInvalidDocuments = errors.New("some documents are invalid")

// Validate loads every configured document and reports the result of each tree.
func Validate(ctx context.Context, cfg config.Config, src ports.DocumentSource, w io.Writer, logger *slog.Logger) error {
	eng, loadErr := createEngine(ctx, cfg, src, logger)

	for _, id := range eng.Trees() {
		tree, err := eng.Tree(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "ok   %s (%d nodes)\n", id, len(tree.Nodes))
	}

	if loadErr == nil {
		return nil
	}
	for _, err := range unjoin(loadErr) {
		fmt.Fprintf(w, "FAIL %v\n", err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDocuments, loadErr)
}

// Show prints the line chain of a tree.
func Show(ctx context.Context, cfg config.Config, src ports.DocumentSource, w io.Writer, logger *slog.Logger, treeID string) error {
	tree, err := loadTree(ctx, cfg, src, logger, treeID)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, runtime.RenderTree(tree))
	return err
}

// Graph prints a Mermaid flowchart of a tree.
func Graph(ctx context.Context, cfg config.Config, src ports.DocumentSource, w io.Writer, logger *slog.Logger, treeID string) error {
	tree, err := loadTree(ctx, cfg, src, logger, treeID)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(tree, nil))
	return err
}

func loadTree(ctx context.Context, cfg config.Config, src ports.DocumentSource, logger *slog.Logger, treeID string) (*domain.Tree, error) {
	eng, loadErr := createEngine(ctx, cfg, src, logger)
	tree, err := eng.Tree(treeID)
	if err != nil {
		if loadErr != nil {
			return nil, errors.Join(err, loadErr)
		}
		return nil, err
	}
	if loadErr != nil {
		logger.Warn("some documents failed to load", "err", loadErr)
	}
	return tree, nil
}

func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
