package cmd

import (
	"fmt"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search bookings by passenger name",
	Long: `List bookings whose passenger name contains the given text.
Matching is case-insensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Close()

	sess, _, err := loadSession(cfg, log)
	if err != nil {
		return err
	}

	results := sess.SearchPassengers(args[0])
	if len(results) == 0 {
		fmt.Printf("No bookings match '%s'\n", args[0])
		return nil
	}

	fmt.Printf("Found %d record(s):\n", len(results))
	for i, p := range results {
		fmt.Printf("  %d. %s\n", i+1, p)
	}
	return nil
}
