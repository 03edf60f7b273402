package cli

import (
	"github.com/spf13/cobra"

	"github.com/ekaraca/phishdrill/internal/model"
)

func newResultsCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show a registered user's past game results",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			results, err := users.Results(cmd.Context(), model.UserID(userID))
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(results)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "User number assigned at registration")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
