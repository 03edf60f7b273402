package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the public leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			entries, err := users.Leaderboard(cmd.Context())
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(entries)
			return nil
		},
	}
}
