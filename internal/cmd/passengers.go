package cmd

import (
	"fmt"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/spf13/cobra"
)

var passengersCmd = &cobra.Command{
	Use:   "passengers",
	Short: "List all booked passengers",
	Long:  `List every passenger record in the bookings file, in booking order.`,
	RunE:  runPassengers,
}

func init() {
	rootCmd.AddCommand(passengersCmd)
}

func runPassengers(cmd *cobra.Command, args []string) error {
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

	records := sess.Passengers()
	if len(records) == 0 {
		fmt.Println("No bookings")
		return nil
	}

	for i, p := range records {
		fmt.Printf("%d. %s\n", i+1, p)
	}
	return nil
}
