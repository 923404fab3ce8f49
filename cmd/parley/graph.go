package main

import (
	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <tree>",
	Short: "Export a conversation as a Mermaid diagram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		return cli.Graph(cmd.Context(), env.cfg, env.source, cmd.OutOrStdout(), env.logger, args[0])
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
