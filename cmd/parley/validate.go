package main

import (
	"fmt"

	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every document for errors",
	Long:  `Loads every configured pairs and tree document and reports parse errors, dangling references and empty choices.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		if err := cli.Validate(cmd.Context(), env.cfg, env.source, cmd.OutOrStdout(), env.logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All documents are valid.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
