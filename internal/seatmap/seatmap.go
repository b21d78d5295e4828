// Package seatmap models the fixed 5×6 cabin grid. Each seat is either
// available or booked; the map knows nothing about passengers, which keeps
// it a pure state machine that the session layer drives.
package seatmap

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/seatwise/seatwise/internal/errors"
)

// Grid dimensions. The cabin layout is fixed: rows 1-5, columns A-F.
const (
	Rows = 5
	Cols = 6
)

// Seats is the total seat count of the grid.
const Seats = Rows * Cols

// State is the occupancy state of a single seat.
type State uint8

const (
	// Available means the seat can be booked.
	Available State = iota
	// Booked means the seat is held by a passenger record.
	Booked
)

// Render characters for seat states.
const (
	availableChar = 'O'
	bookedChar    = 'X'
)

// Seat identifies one position in the grid by zero-based row and column.
type Seat struct {
	Row int
	Col int
}

// InGrid reports whether the seat lies within the 5×6 grid.
func (s Seat) InGrid() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

// Label returns the user-facing seat label, e.g. {0,0} -> "1A", {4,5} -> "5F".
func (s Seat) Label() string {
	return strconv.Itoa(s.Row+1) + string(rune('A'+s.Col))
}

// ParseSeat converts a label like "3C" into a Seat. Labels are
// case-insensitive and may carry surrounding whitespace. Malformed or
// out-of-range labels fail with ErrInvalidSeat.
func ParseSeat(label string) (Seat, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(label))
	if len(trimmed) < 2 {
		return Seat{}, errors.Wrapf(errors.ErrInvalidSeat, "label %q", label)
	}

	rowPart := trimmed[:len(trimmed)-1]
	colPart := rune(trimmed[len(trimmed)-1])

	for _, r := range rowPart {
		if !unicode.IsDigit(r) {
			return Seat{}, errors.Wrapf(errors.ErrInvalidSeat, "label %q", label)
		}
	}
	if colPart < 'A' || colPart > 'Z' {
		return Seat{}, errors.Wrapf(errors.ErrInvalidSeat, "label %q", label)
	}

	row, err := strconv.Atoi(rowPart)
	if err != nil {
		return Seat{}, errors.Wrapf(errors.ErrInvalidSeat, "label %q", label)
	}

	seat := Seat{Row: row - 1, Col: int(colPart - 'A')}
	if !seat.InGrid() {
		return Seat{}, errors.Wrapf(errors.ErrInvalidSeat, "seat %s out of range", trimmed)
	}
	return seat, nil
}

// Map is the seat grid. The zero value is not usable; construct with New.
type Map struct {
	cells [Rows][Cols]State
}

// New returns a Map with every seat available.
func New() *Map {
	return &Map{}
}

// IsAvailable reports whether the seat is in the grid and available.
func (m *Map) IsAvailable(s Seat) bool {
	return s.InGrid() && m.cells[s.Row][s.Col] == Available
}

// Book transitions a seat from available to booked.
// Fails with ErrInvalidSeat when the seat is out of range, and with
// ErrSeatTaken when the seat is already booked.
func (m *Map) Book(s Seat) error {
	if !s.InGrid() {
		return errors.Wrapf(errors.ErrInvalidSeat, "seat (%d,%d)", s.Row, s.Col)
	}
	if m.cells[s.Row][s.Col] == Booked {
		return errors.Wrapf(errors.ErrSeatTaken, "seat %s", s.Label())
	}
	m.cells[s.Row][s.Col] = Booked
	return nil
}

// Release transitions a seat from booked back to available.
// Fails with ErrNotBooked when the seat is already available.
func (m *Map) Release(s Seat) error {
	if !s.InGrid() {
		return errors.Wrapf(errors.ErrInvalidSeat, "seat (%d,%d)", s.Row, s.Col)
	}
	if m.cells[s.Row][s.Col] == Available {
		return errors.Wrapf(errors.ErrNotBooked, "seat %s", s.Label())
	}
	m.cells[s.Row][s.Col] = Available
	return nil
}

// CountAvailable returns the number of available seats, in [0, Seats].
func (m *Map) CountAvailable() int {
	count := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if m.cells[r][c] == Available {
				count++
			}
		}
	}
	return count
}

// FirstAvailable returns the first available seat in row-major order.
// This is the auto-assignment policy used when a passenger does not pick
// a seat. Fails with ErrNoSeatsAvailable when the grid is full.
func (m *Map) FirstAvailable() (Seat, error) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if m.cells[r][c] == Available {
				return Seat{Row: r, Col: c}, nil
			}
		}
	}
	return Seat{}, errors.ErrNoSeatsAvailable
}

// Render returns the grid as Rows strings of Cols characters each,
// 'O' for available and 'X' for booked, in row-major order. The output is
// a pure function of the current state.
func (m *Map) Render() []string {
	rows := make([]string, Rows)
	for r := 0; r < Rows; r++ {
		var b strings.Builder
		b.Grow(Cols)
		for c := 0; c < Cols; c++ {
			if m.cells[r][c] == Booked {
				b.WriteByte(bookedChar)
			} else {
				b.WriteByte(availableChar)
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// Reset returns every seat to available.
func (m *Map) Reset() {
	m.cells = [Rows][Cols]State{}
}
