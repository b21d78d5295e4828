package cmd

import (
	"fmt"
	"strings"

	"github.com/seatwise/seatwise/internal/config"
	"github.com/seatwise/seatwise/internal/seatmap"
	"github.com/spf13/cobra"
)

var seatsCmd = &cobra.Command{
	Use:   "seats",
	Short: "Show the seat map",
	Long: `Print the cabin seat map. O marks an available seat, X a booked
one. Columns are lettered A through F, rows numbered 1 through 5.`,
	RunE: runSeats,
}

func init() {
	rootCmd.AddCommand(seatsCmd)
}

func runSeats(cmd *cobra.Command, args []string) error {
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

	rows, available := sess.ListSeats()

	header := "     "
	for c := 0; c < seatmap.Cols; c++ {
		header += string(rune('A'+c)) + "  "
	}
	fmt.Println(strings.TrimRight(header, " "))

	for r, row := range rows {
		cells := make([]string, 0, len(row))
		for _, ch := range row {
			cells = append(cells, string(ch))
		}
		fmt.Printf("%2d | %s\n", r+1, strings.Join(cells, "  "))
	}

	fmt.Printf("\nAvailable seats: %d of %d\n", available, seatmap.Seats)
	return nil
}
