package cli

import (
	"github.com/spf13/cobra"

	"github.com/ekaraca/phishdrill/internal/model"
)

func newRegisterCmd() *cobra.Command {
	var profile model.Profile

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a participant profile",
		Long: `Register a participant profile with the user service.

Registration is optional: it lets finished games be saved under your profile
and shown on the leaderboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			id, err := users.Register(cmd.Context(), profile)
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(RegisterResult{UserID: id})
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.FullName, "name", "", "Full name")
	cmd.Flags().StringVar(&profile.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&profile.EducationLevel, "education", "", "Education level")
	cmd.Flags().StringVar(&profile.Profession, "profession", "", "Profession")
	cmd.Flags().BoolVar(&profile.HasCybersecurityTraining, "trained", false, "Has prior cybersecurity training")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birth-date")
	_ = cmd.MarkFlagRequired("education")
	_ = cmd.MarkFlagRequired("profession")

	return cmd
}
