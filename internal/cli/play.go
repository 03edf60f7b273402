package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ekaraca/phishdrill/internal/dependencies/clock"
	"github.com/ekaraca/phishdrill/internal/session"
	"github.com/ekaraca/phishdrill/internal/tui"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the quiz interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal, so diagnostics go to a file
			logger, closeLog, err := fileLogger()
			if err != nil {
				return err
			}
			defer closeLog()

			controller := session.NewController(games, users, clock.New(), logger)
			return tui.Run(controller, users)
		},
	}
}

// fileLogger logs to ~/.phishdrill/client.log, falling back to a discard
// logger when the file cannot be opened
func fileLogger() (*slog.Logger, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".phishdrill")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(filepath.Join(dir, "client.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	logger := slog.New(slog.NewJSONHandler(f, nil))
	return logger, func() { _ = f.Close() }, nil
}
