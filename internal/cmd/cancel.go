package cmd

import (
	"fmt"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/seatwise/seatwise/internal/errors"
	"github.com/seatwise/seatwise/internal/seatmap"
	"github.com/seatwise/seatwise/internal/session"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <name>",
	Short: "Cancel a passenger's booking",
	Long: `Cancel a booking matched by passenger name and save the updated
bookings file. Matching is a case-insensitive substring search.

If the name matches more than one booking, the candidates are listed
and nothing is cancelled; narrow the match with --seat.

Examples:
  # Cancel by name
  seatwise cancel alice

  # Disambiguate with the seat
  seatwise cancel alice --seat 2B`,
	Args: cobra.ExactArgs(1),
	RunE: runCancel,
}

var cancelSeat string

func init() {
	rootCmd.AddCommand(cancelCmd)

	cancelCmd.Flags().StringVarP(&cancelSeat, "seat", "s", "", "Seat label to narrow an ambiguous match (e.g. 2B)")
}

func runCancel(cmd *cobra.Command, args []string) error {
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

	if cancelSeat != "" {
		return cancelBySeat(sess, path, args[0], cancelSeat)
	}

	p, err := sess.CancelBooking(args[0])
	if err != nil {
		var ambiguous *errors.AmbiguousMatchError
		if errors.As(err, &ambiguous) {
			fmt.Printf("%d bookings match '%s':\n", len(ambiguous.Candidates), ambiguous.Query)
			for i, c := range ambiguous.Candidates {
				fmt.Printf("  %d. %s\n", i+1, c)
			}
			fmt.Println("Re-run with --seat to pick one.")
			return errors.ErrAmbiguousMatch
		}
		return err
	}

	if err := sess.Save(path); err != nil {
		return err
	}

	fmt.Printf("Cancelled: %s\n", p)
	return nil
}

// cancelBySeat narrows an ambiguous name match to the record holding
// the given seat.
func cancelBySeat(sess *session.Session, path, query, label string) error {
	seat, err := seatmap.ParseSeat(label)
	if err != nil {
		return err
	}

	for _, p := range sess.SearchPassengers(query) {
		if p.Seat == seat {
			if err := sess.CancelRecord(p); err != nil {
				return err
			}
			if err := sess.Save(path); err != nil {
				return err
			}
			fmt.Printf("Cancelled: %s\n", p)
			return nil
		}
	}

	return errors.NewNotFoundError("booking", fmt.Sprintf("%s in seat %s", query, seat.Label()))
}
