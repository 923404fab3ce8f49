package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/config"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/observability"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// PlayOptions tune the interactive session.
type PlayOptions struct {
	Color  bool
	Banner bool
	Watch  bool
	Stats  bool
	Debug  bool
}

// terminalHost logs the exclusivity requests; a terminal has nothing else to suspend.
type terminalHost struct {
	logger *slog.Logger
}

func (h terminalHost) Lock()   { h.logger.Debug("host locked") }
func (h terminalHost) Unlock() { h.logger.Debug("host unlocked") }

// Play runs treeID interactively, reading commands from in.
func Play(ctx context.Context, cfg config.Config, src ports.DocumentSource, in io.Reader, out io.Writer, logger *slog.Logger, treeID string, opts PlayOptions) error {
	if opts.Banner {
		tui.PrintBanner(out, opts.Color)
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = observability.MergeHooks(hooks, observability.LogHooks(logger))
	}

	presenter := runner.NewTextPresenter(out, runner.WithSlots(cfg.Slots), runner.WithColor(opts.Color))
	eng, loadErr := createEngine(ctx, cfg, src, logger,
		parley.WithPresenter(presenter),
		parley.WithHost(terminalHost{logger: logger}),
		parley.WithLifecycleHooks(hooks),
	)
	if loadErr != nil {
		logger.Warn("some documents failed to load", "err", loadErr)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Watch {
		reloaded, err := eng.Watch(ctx)
		if err != nil {
			return err
		}
		go func() {
			for ref := range reloaded {
				logger.Info("reloaded, restart the conversation to see the changes", "document", ref.Name)
			}
		}()
	}

	r := runner.New(in, out, presenter, runner.WithLogger(logger))
	eng.Bind(r)

	if err := eng.Start(treeID); err != nil {
		return err
	}

	err := r.Run(ctx, eng)
	if opts.Stats {
		if werr := writeStats(out, reg); werr != nil {
			return werr
		}
	}
	if errors.Is(err, runner.ErrQuit) {
		return nil
	}
	return err
}

// writeStats prints every counter of reg as "name{labels} value".
func writeStats(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	fmt.Fprintln(w, "--- stats ---")
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}
