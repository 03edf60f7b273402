package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ekaraca/phishdrill/internal/gameclient"
)

var (
	cfg   *Config
	games *gameclient.GameClient
	users *gameclient.UserClient
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phishdrill",
		Short: "Terminal client for the cybersecurity awareness quiz",
		Long: `phishdrill is a terminal client for the cybersecurity awareness quiz.

It plays phishing-recognition and password-security question rounds against a
game service, with optional participant registration and a public leaderboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig()
			if err != nil {
				return err
			}
			if flag := cmd.Flags().Lookup("game-api"); flag != nil && flag.Changed {
				loaded.GameAPI = flag.Value.String()
			}
			if flag := cmd.Flags().Lookup("user-api"); flag != nil && flag.Changed {
				loaded.UserAPI = flag.Value.String()
			}
			if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Changed {
				loaded.Output = flag.Value.String()
			}
			cfg = loaded

			games = gameclient.NewGameClient(cfg.GameAPI)
			users = gameclient.NewUserClient(cfg.UserAPI)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("game-api", "", "Game service base URL (env: PHISHDRILL_GAME_API)")
	rootCmd.PersistentFlags().String("user-api", "", "User service base URL (env: PHISHDRILL_USER_API)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json (env: PHISHDRILL_OUTPUT)")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newResultsCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
