package cmd

import (
	"fmt"
	"os"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/seatwise/seatwise/internal/errors"
	"github.com/seatwise/seatwise/internal/filelock"
	"github.com/seatwise/seatwise/internal/logging"
	"github.com/seatwise/seatwise/internal/session"
	"github.com/seatwise/seatwise/internal/tui"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the interactive booking menu",
	Long: `Start the interactive terminal menu for booking, cancelling and
searching seats. Any bookings file from a previous session is picked up
with the Load menu item.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Close()

	sess := session.New(log)
	path := bookingsPath(cfg)

	lock, err := lockBookings(path)
	if err != nil {
		return err
	}
	defer lock.Release()

	log.Info("starting interactive session", "bookings_file", path)

	app := tui.New(sess, path, cfg.TUI.ShowLegend)
	return app.Run()
}

// lockBookings takes the advisory lock that keeps two seatwise processes
// from rewriting the same bookings file.
func lockBookings(path string) (*filelock.Lock, error) {
	lock := filelock.New(path)
	if err := lock.Acquire(); err != nil {
		return nil, err
	}
	return lock, nil
}

// newLogger builds the configured logger, or a no-op logger when
// logging is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
}

// bookingsPath resolves the bookings file path against the working
// directory.
func bookingsPath(cfg *config.Config) string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return cfg.Paths.ResolveBookingsFile(cwd)
}

// loadSession builds a session for a one-shot command, replaying the
// bookings file when one exists. A missing file means no prior session
// and starts empty.
func loadSession(cfg *config.Config, log *logging.Logger) (*session.Session, string, error) {
	sess := session.New(log)
	path := bookingsPath(cfg)

	if err := sess.Load(path); err != nil {
		if errors.Is(err, errors.ErrFileNotFound) {
			log.Debug("no bookings file, starting empty", "path", path)
			return sess, path, nil
		}
		return nil, "", err
	}

	return sess, path, nil
}
