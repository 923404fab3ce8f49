// Package config reads the parley.yaml file used by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/adapters/redis"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "parley.yaml"

// Config is the CLI configuration.
type Config struct {
	Source     SourceConfig `mapstructure:"source"`
	Pairs      []string     `mapstructure:"pairs"`
	Trees      []string     `mapstructure:"trees"`
	Slots      int          `mapstructure:"slots"`
	MaxOptions int          `mapstructure:"max_options"`
	Log        LogConfig    `mapstructure:"log"`
}

// SourceConfig selects where documents are read from.
type SourceConfig struct {
	Kind  string      `mapstructure:"kind"`
	Dir   string      `mapstructure:"dir"`
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Source kinds.
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Kind: SourceFile,
			Dir:  ".",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: redis.DefaultPrefix,
			},
		},
		Slots: 4,
		Log: LogConfig{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceFile, SourceRedis:
	default:
		return fmt.Errorf("invalid config: unknown source kind %q", c.Source.Kind)
	}
	if c.Slots < 1 {
		return fmt.Errorf("invalid config: slots must be positive, got %d", c.Slots)
	}
	if c.MaxOptions < 0 {
		return fmt.Errorf("invalid config: max_options must not be negative, got %d", c.MaxOptions)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch logging.Format(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid config: unknown log format %q", c.Log.Format)
	}
	return nil
}
