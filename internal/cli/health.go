package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check game service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			health, err := games.Health(cmd.Context())
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(HealthResult{Status: health.Status})
			return nil
		},
	}
}
