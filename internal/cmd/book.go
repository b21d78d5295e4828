package cmd

import (
	"fmt"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/seatwise/seatwise/internal/seatmap"
	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book <name> <flight>",
	Short: "Book a seat for a passenger",
	Long: `Book a seat for a passenger on the given flight and save the
updated bookings file.

Without --seat, the first available seat in row-major order is
assigned. Seats are written as row number plus column letter, e.g. 3C.

Examples:
  # Book the first free seat
  seatwise book "Alice Chen" FL100

  # Book a specific seat
  seatwise book "Alice Chen" FL100 --seat 2B`,
	Args: cobra.ExactArgs(2),
	RunE: runBook,
}

var bookSeat string

func init() {
	rootCmd.AddCommand(bookCmd)

	bookCmd.Flags().StringVarP(&bookSeat, "seat", "s", "", "Seat label (e.g. 3C); empty picks the first available")
}

func runBook(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Close()

	lock, err := lockBookings(bookingsPath(cfg))
	if err != nil {
		return err
	}
	defer lock.Release()

	sess, path, err := loadSession(cfg, log)
	if err != nil {
		return err
	}

	var requested *seatmap.Seat
	if bookSeat != "" {
		seat, err := seatmap.ParseSeat(bookSeat)
		if err != nil {
			return err
		}
		requested = &seat
	}

	p, err := sess.BookTicket(args[0], args[1], requested)
	if err != nil {
		return err
	}

	if err := sess.Save(path); err != nil {
		return err
	}

	fmt.Printf("Booked: %s\n", p)
	return nil
}
