// Package ledger holds the in-session passenger booking records.
package ledger

import (
	"fmt"
	"strings"

	"github.com/seatwise/seatwise/internal/seatmap"
)

// Passenger is one booking record. Records are immutable once created;
// cancellation removes the record rather than mutating it.
type Passenger struct {
	Name       string
	FlightCode string
	Seat       seatmap.Seat
}

// String formats the record for user display.
func (p Passenger) String() string {
	return fmt.Sprintf("%s | Seat %s | Flight %s", p.Name, p.Seat.Label(), p.FlightCode)
}

// Ledger is an insertion-ordered collection of passenger records.
// Duplicate names are allowed; records are disambiguated by seat.
type Ledger struct {
	records []Passenger
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append adds a record at the end of the ledger.
func (l *Ledger) Append(p Passenger) {
	l.records = append(l.records, p)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// All returns a copy of every record in insertion order.
func (l *Ledger) All() []Passenger {
	out := make([]Passenger, len(l.records))
	copy(out, l.records)
	return out
}

// At returns the record at index i.
func (l *Ledger) At(i int) (Passenger, bool) {
	if i < 0 || i >= len(l.records) {
		return Passenger{}, false
	}
	return l.records[i], true
}

// RemoveAt removes and returns the record at index i, preserving the order
// of the remaining records.
func (l *Ledger) RemoveAt(i int) (Passenger, bool) {
	if i < 0 || i >= len(l.records) {
		return Passenger{}, false
	}
	p := l.records[i]
	l.records = append(l.records[:i], l.records[i+1:]...)
	return p, true
}

// Match returns the indices of records whose name contains query,
// case-insensitively, in insertion order. An empty or blank query
// matches nothing.
func (l *Ledger) Match(query string) []int {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return nil
	}
	var idx []int
	for i, p := range l.records {
		if strings.Contains(strings.ToLower(p.Name), key) {
			idx = append(idx, i)
		}
	}
	return idx
}

// FindExact returns the indices of records whose name equals name,
// case-insensitively, in insertion order.
func (l *Ledger) FindExact(name string) []int {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil
	}
	var idx []int
	for i, p := range l.records {
		if strings.ToLower(p.Name) == key {
			idx = append(idx, i)
		}
	}
	return idx
}

// Search returns every record whose name contains query, case-insensitively,
// in insertion order. A miss returns an empty slice, not an error.
func (l *Ledger) Search(query string) []Passenger {
	idx := l.Match(query)
	out := make([]Passenger, 0, len(idx))
	for _, i := range idx {
		out = append(out, l.records[i])
	}
	return out
}

// HoldsSeat reports whether any record references the given seat.
func (l *Ledger) HoldsSeat(s seatmap.Seat) bool {
	for _, p := range l.records {
		if p.Seat == s {
			return true
		}
	}
	return false
}
