package main

import (
	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <tree>",
	Short: "Print the opening lines of a conversation",
	Long:  `Follows the line chain from the root of a tree until the first choice or the end, one node per line.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		return cli.Show(cmd.Context(), env.cfg, env.source, cmd.OutOrStdout(), env.logger, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
