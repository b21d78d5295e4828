// Package session mediates every user-requested booking operation and keeps
// the seat map and the passenger ledger mutually consistent.
//
// The invariant the session maintains: a seat is booked iff exactly one
// ledger record references it. Book and cancel each mutate the seat map
// first or last such that a failed validation leaves both structures
// untouched, and load swaps in freshly built structures only after the
// whole file decoded cleanly.
package session

import (
	"strings"

	"github.com/seatwise/seatwise/internal/errors"
	"github.com/seatwise/seatwise/internal/ledger"
	"github.com/seatwise/seatwise/internal/logging"
	"github.com/seatwise/seatwise/internal/seatmap"
	"github.com/seatwise/seatwise/internal/store"
)

// Session owns one seat map and one ledger for the lifetime of the process.
// It is not safe for concurrent use.
type Session struct {
	seats  *seatmap.Map
	ledger *ledger.Ledger
	log    *logging.Logger
}

// New creates a Session with an all-available seat map and an empty ledger.
// A nil logger is replaced with a no-op logger.
func New(log *logging.Logger) *Session {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Session{
		seats:  seatmap.New(),
		ledger: ledger.New(),
		log:    log,
	}
}

// BookTicket books a seat for the named passenger on the given flight.
// When requested is nil the first available seat in row-major order is
// assigned. The returned record echoes the assigned seat.
//
// Failure modes: ErrInvalidInput for an empty name or flight code (or a name
// containing the persistence delimiter), ErrInvalidSeat for an out-of-grid
// request, ErrSeatTaken for an occupied seat, ErrNoSeatsAvailable when the
// grid is full. A failed attempt leaves the session unchanged.
func (s *Session) BookTicket(name, flightCode string, requested *seatmap.Seat) (ledger.Passenger, error) {
	log := s.log.WithOperation("book")

	name = strings.TrimSpace(name)
	flightCode = strings.TrimSpace(flightCode)
	if name == "" {
		return ledger.Passenger{}, errors.NewValidationError("passenger name cannot be empty").
			WithField("name").WithCause(errors.ErrInvalidInput)
	}
	if strings.Contains(name, store.Delimiter) {
		return ledger.Passenger{}, errors.NewValidationError("passenger name cannot contain '" + store.Delimiter + "'").
			WithField("name").WithValue(name).WithCause(errors.ErrInvalidInput)
	}
	if flightCode == "" {
		return ledger.Passenger{}, errors.NewValidationError("flight code cannot be empty").
			WithField("flightCode").WithCause(errors.ErrInvalidInput)
	}

	var seat seatmap.Seat
	if requested != nil {
		seat = *requested
		if !seat.InGrid() {
			return ledger.Passenger{}, errors.NewBookingError("seat is outside the cabin grid", errors.ErrInvalidSeat).
				WithPassenger(name).WithSeat(seat.Label())
		}
		if !s.seats.IsAvailable(seat) {
			return ledger.Passenger{}, errors.NewBookingError("seat is already booked", errors.ErrSeatTaken).
				WithPassenger(name).WithSeat(seat.Label())
		}
	} else {
		var err error
		seat, err = s.seats.FirstAvailable()
		if err != nil {
			return ledger.Passenger{}, errors.NewBookingError("no seat could be assigned", err).
				WithPassenger(name).WithFlight(flightCode)
		}
		log.Debug("auto-assigned seat", "seat", seat.Label())
	}

	// Validation passed; Book cannot fail from here.
	if err := s.seats.Book(seat); err != nil {
		return ledger.Passenger{}, err
	}

	p := ledger.Passenger{Name: name, FlightCode: flightCode, Seat: seat}
	s.ledger.Append(p)

	log.Info("booked ticket", "passenger", name, "flight", flightCode, "seat", seat.Label())
	return p, nil
}

// CancelBooking cancels the booking whose passenger name contains query,
// case-insensitively. Zero matches fail with a NotFoundError. When the
// substring search is ambiguous but the query equals exactly one record's
// full name, that record is cancelled. Any other multi-match fails with an
// AmbiguousMatchError carrying every candidate; the caller must present
// them and confirm one via CancelRecord.
func (s *Session) CancelBooking(query string) (ledger.Passenger, error) {
	matches := s.ledger.Match(query)
	switch len(matches) {
	case 0:
		return ledger.Passenger{}, errors.NewNotFoundError("passenger", strings.TrimSpace(query)).
			WithCause(errors.ErrNotFound)
	case 1:
		return s.cancelAt(matches[0])
	default:
		if exact := s.ledger.FindExact(query); len(exact) == 1 {
			return s.cancelAt(exact[0])
		}
		candidates := make([]errors.Candidate, 0, len(matches))
		for _, i := range matches {
			p, _ := s.ledger.At(i)
			candidates = append(candidates, errors.Candidate{
				Name:   p.Name,
				Flight: p.FlightCode,
				Seat:   p.Seat.Label(),
			})
		}
		return ledger.Passenger{}, errors.NewAmbiguousMatchError(strings.TrimSpace(query), candidates)
	}
}

// CancelRecord cancels one specific record, typically a candidate selected
// after CancelBooking reported an ambiguous match.
func (s *Session) CancelRecord(p ledger.Passenger) error {
	for i, rec := range s.ledger.All() {
		if rec == p {
			_, err := s.cancelAt(i)
			return err
		}
	}
	return errors.NewNotFoundError("passenger", p.Name).WithCause(errors.ErrNotFound)
}

// cancelAt removes the record at index i and releases its seat.
func (s *Session) cancelAt(i int) (ledger.Passenger, error) {
	p, ok := s.ledger.At(i)
	if !ok {
		return ledger.Passenger{}, errors.NewNotFoundError("passenger", "").WithCause(errors.ErrNotFound)
	}
	if err := s.seats.Release(p.Seat); err != nil {
		return ledger.Passenger{}, err
	}
	s.ledger.RemoveAt(i)

	s.log.WithOperation("cancel").Info("cancelled booking",
		"passenger", p.Name, "flight", p.FlightCode, "seat", p.Seat.Label())
	return p, nil
}

// SearchPassengers returns every record whose name contains query,
// case-insensitively, in insertion order. A miss returns an empty slice.
func (s *Session) SearchPassengers(query string) []ledger.Passenger {
	return s.ledger.Search(query)
}

// ListSeats returns the rendered seat grid and the available seat count.
func (s *Session) ListSeats() ([]string, int) {
	return s.seats.Render(), s.seats.CountAvailable()
}

// Passengers returns a copy of every booking record in insertion order.
func (s *Session) Passengers() []ledger.Passenger {
	return s.ledger.All()
}

// SeatAvailable reports whether the given seat is currently available.
func (s *Session) SeatAvailable(seat seatmap.Seat) bool {
	return s.seats.IsAvailable(seat)
}

// Save writes the ledger to path in insertion order.
func (s *Session) Save(path string) error {
	if err := store.Save(path, s.ledger.All()); err != nil {
		s.log.WithOperation("save").Error("save failed", "path", path, "err", err)
		return err
	}
	s.log.WithOperation("save").Info("saved bookings", "path", path, "records", s.ledger.Len())
	return nil
}

// Load replaces the session state with the contents of path. The seat map is
// re-derived purely from the loaded records, so seat and ledger state agree
// regardless of how stale the file is. Load is atomic-or-unchanged: any
// decode failure leaves the current session exactly as it was.
func (s *Session) Load(path string) error {
	records, err := store.Load(path)
	if err != nil {
		s.log.WithOperation("load").Warn("load failed", "path", path, "err", err)
		return err
	}

	seats := seatmap.New()
	led := ledger.New()
	for _, p := range records {
		// The file was written by this program, so a duplicated seat is
		// logged and trusted rather than failing the replay.
		if led.HoldsSeat(p.Seat) {
			s.log.WithOperation("load").Warn("duplicate seat in bookings file", "seat", p.Seat.Label())
		} else if err := seats.Book(p.Seat); err != nil {
			return err
		}
		led.Append(p)
	}

	s.seats = seats
	s.ledger = led

	s.log.WithOperation("load").Info("loaded bookings", "path", path, "records", led.Len())
	return nil
}
