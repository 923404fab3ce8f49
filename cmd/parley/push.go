package main

import (
	"fmt"

	"github.com/aretw0/parley/internal/cli"
	"github.com/aretw0/parley/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Copy the configured documents into Redis",
	Long:  `Reads every pairs and tree document of the configured source and stores it in Redis, so a game server can use the redis source.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		flags := cmd.Flags()
		addr, _ := flags.GetString("to")
		password, _ := flags.GetString("password")
		db, _ := flags.GetInt("db")
		prefix, _ := flags.GetString("prefix")

		dest := redis.New(addr, password, db, redis.WithPrefix(prefix))
		defer dest.Close()

		n, err := cli.Push(cmd.Context(), env.source, dest, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d documents pushed to %s\n", n, addr)
		return nil
	},
}

func init() {
	flags := pushCmd.Flags()
	flags.String("to", "localhost:6379", "Destination Redis address")
	flags.String("password", "", "Destination Redis password")
	flags.Int("db", 0, "Destination Redis database")
	flags.String("prefix", redis.DefaultPrefix, "Destination key prefix")
	rootCmd.AddCommand(pushCmd)
}
