// Package cli implements the commands of the parley binary.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/config"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/adapters/file"
	"github.com/aretw0/parley/pkg/adapters/redis"
	"github.com/aretw0/parley/pkg/ports"
)

// Options are the command-line overrides of the configuration file.
// Zero values keep the configured value.
type Options struct {
	ConfigPath string
	Dir        string
	Source     string
	RedisAddr  string
	Slots      int
	LogLevel   string
	LogFormat  string
}

// LoadConfig reads the configuration file and applies the overrides.
func LoadConfig(opts Options) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if opts.Dir != "" {
		cfg.Source.Dir = opts.Dir
	}
	if opts.Source != "" {
		cfg.Source.Kind = opts.Source
	}
	if opts.RedisAddr != "" {
		cfg.Source.Redis.Addr = opts.RedisAddr
	}
	if opts.Slots > 0 {
		cfg.Slots = opts.Slots
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	return cfg, cfg.Validate()
}

// NewLogger builds the logger described by cfg.
func NewLogger(cfg config.Config) *slog.Logger {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.New(level, logging.Format(cfg.Log.Format))
}

// NewSource opens the document source described by cfg.
// The returned close function releases it.
func NewSource(cfg config.Config, logger *slog.Logger) (ports.DocumentSource, func() error, error) {
	switch cfg.Source.Kind {
	case config.SourceFile:
		src := file.New(cfg.Source.Dir, file.WithLogger(logger.With("component", "source")))
		return src, func() error { return nil }, nil
	case config.SourceRedis:
		r := cfg.Source.Redis
		src := redis.New(r.Addr, r.Password, r.DB, redis.WithPrefix(r.Prefix))
		return src, src.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
}

// createEngine builds an engine over src and loads the configured documents.
// A load error is returned alongside a usable engine: documents that did
// load are registered.
func createEngine(ctx context.Context, cfg config.Config, src ports.DocumentSource, logger *slog.Logger, extra ...parley.Option) (*parley.Engine, error) {
	opts := []parley.Option{
		parley.WithSource(src),
		parley.WithLogger(logger),
		parley.WithMaxOptions(cfg.MaxOptions),
	}
	opts = append(opts, extra...)

	eng := parley.New(opts...)
	return eng, eng.LoadAll(ctx, cfg.Pairs, cfg.Trees)
}
