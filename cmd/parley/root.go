package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/parley/internal/cli"
	"github.com/aretw0/parley/internal/config"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Parley plays branching conversation trees",
	Long: `Parley loads pairs and tree documents (XML or YAML) and lets you validate,
inspect and play the conversations they describe.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultFile, "Configuration file")
	flags.String("dir", "", "Directory containing the pairs/ and trees/ folders")
	flags.String("source", "", "Document source: file or redis")
	flags.String("redis-addr", "", "Redis address when the source is redis")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
}

// environment holds what every command needs.
type environment struct {
	cfg    config.Config
	logger *slog.Logger
	source ports.DocumentSource
	close  func() error
}

func setup(cmd *cobra.Command) (*environment, error) {
	flags := cmd.Flags()
	opts := cli.Options{}
	opts.ConfigPath, _ = flags.GetString("config")
	opts.Dir, _ = flags.GetString("dir")
	opts.Source, _ = flags.GetString("source")
	opts.RedisAddr, _ = flags.GetString("redis-addr")
	opts.LogLevel, _ = flags.GetString("log-level")
	opts.LogFormat, _ = flags.GetString("log-format")
	if flags.Lookup("slots") != nil {
		opts.Slots, _ = flags.GetInt("slots")
	}

	cfg, err := cli.LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger := cli.NewLogger(cfg)
	src, closeFn, err := cli.NewSource(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, logger: logger, source: src, close: closeFn}, nil
}
