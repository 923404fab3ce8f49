package main

import (
	"os"

	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var playCmd = &cobra.Command{
	Use:   "play <tree>",
	Short: "Play a conversation in the terminal",
	Long: `Starts the conversation and reads commands from stdin:
an empty line continues, a number picks an option, "quit" leaves.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		flags := cmd.Flags()
		noColor, _ := flags.GetBool("no-color")
		opts := cli.PlayOptions{
			Color: !noColor && term.IsTerminal(int(os.Stdout.Fd())),
		}
		opts.Banner, _ = flags.GetBool("banner")
		opts.Watch, _ = flags.GetBool("watch")
		opts.Stats, _ = flags.GetBool("stats")
		opts.Debug, _ = flags.GetBool("debug")

		return cli.Play(cmd.Context(), env.cfg, env.source, cmd.InOrStdin(), cmd.OutOrStdout(), env.logger, args[0], opts)
	},
}

func init() {
	flags := playCmd.Flags()
	flags.Int("slots", 0, "Number of option slots (overrides the configuration)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("banner", false, "Print the banner before playing")
	flags.BoolP("watch", "w", false, "Reload documents when their files change")
	flags.Bool("stats", false, "Print session metrics when the conversation ends")
	flags.Bool("debug", false, "Log every lifecycle event")
	rootCmd.AddCommand(playCmd)
}
