package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// BookingError Tests
// -----------------------------------------------------------------------------

func TestNewBookingError(t *testing.T) {
	cause := ErrSeatTaken
	err := NewBookingError("seat unavailable", cause)

	if err.message != "seat unavailable" {
		t.Errorf("message = %q, want %q", err.message, "seat unavailable")
	}
	if err.cause != cause {
		t.Errorf("cause = %v, want %v", err.cause, cause)
	}
	if err.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityWarning)
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestBookingError_WithContext(t *testing.T) {
	err := NewBookingError("seat unavailable", ErrSeatTaken).
		WithPassenger("Alice").
		WithSeat("1A").
		WithFlight("FL100")

	msg := err.Error()
	for _, want := range []string{"passenger=Alice", "seat=1A", "flight=FL100", "seat unavailable"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestBookingError_Is(t *testing.T) {
	err := NewBookingError("seat unavailable", ErrSeatTaken)

	if !errors.Is(err, ErrSeatTaken) {
		t.Error("errors.Is(err, ErrSeatTaken) = false, want true")
	}
	if !errors.Is(err, &BookingError{}) {
		t.Error("errors.Is(err, &BookingError{}) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = true, want false")
	}
}

// -----------------------------------------------------------------------------
// StoreError Tests
// -----------------------------------------------------------------------------

func TestStoreError_WithContext(t *testing.T) {
	err := NewStoreError("decode failed", ErrCorruptRecord).
		WithPath("bookings.txt").
		WithLine(3)

	msg := err.Error()
	for _, want := range []string{"path=bookings.txt", "line=3", "decode failed", "corrupt booking record"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityError)
	}
	if !errors.Is(err, ErrCorruptRecord) {
		t.Error("errors.Is(err, ErrCorruptRecord) = false, want true")
	}
}

func TestStoreError_UnwrapsJoinedCause(t *testing.T) {
	inner := fmt.Errorf("open bookings.txt: no such file")
	err := NewStoreError("no bookings file", Join(ErrFileNotFound, inner))

	if !errors.Is(err, ErrFileNotFound) {
		t.Error("errors.Is(err, ErrFileNotFound) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// NotFoundError Tests
// -----------------------------------------------------------------------------

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("passenger", "alice")

	want := "passenger 'alice' not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

// -----------------------------------------------------------------------------
// ValidationError Tests
// -----------------------------------------------------------------------------

func TestValidationError(t *testing.T) {
	err := NewValidationError("name cannot be empty").
		WithField("name").
		WithCause(ErrInvalidInput)

	msg := err.Error()
	if !strings.Contains(msg, "field=name") {
		t.Errorf("Error() = %q, missing field context", msg)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("errors.Is(err, ErrInvalidInput) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// AmbiguousMatchError Tests
// -----------------------------------------------------------------------------

func TestAmbiguousMatchError(t *testing.T) {
	candidates := []Candidate{
		{Name: "Alice Chen", Flight: "FL100", Seat: "1A"},
		{Name: "Alice Wong", Flight: "FL200", Seat: "1B"},
	}
	err := NewAmbiguousMatchError("alice", candidates)

	if err.Query != "alice" {
		t.Errorf("Query = %q, want %q", err.Query, "alice")
	}
	if len(err.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(err.Candidates))
	}
	if !errors.Is(err, ErrAmbiguousMatch) {
		t.Error("errors.Is(err, ErrAmbiguousMatch) = false, want true")
	}

	var ambiguous *AmbiguousMatchError
	if !errors.As(err, &ambiguous) {
		t.Fatal("errors.As failed to extract *AmbiguousMatchError")
	}

	want := "Alice Chen | Seat 1A | Flight FL100"
	if got := ambiguous.Candidates[0].String(); got != want {
		t.Errorf("Candidate.String() = %q, want %q", got, want)
	}
}

// -----------------------------------------------------------------------------
// Classification Helper Tests
// -----------------------------------------------------------------------------

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"booking error", NewBookingError("seat unavailable", ErrSeatTaken), true},
		{"store error", NewStoreError("decode failed", ErrCorruptRecord), true},
		{"not found", NewNotFoundError("passenger", "alice"), true},
		{"validation", NewValidationError("bad input"), true},
		{"ambiguous", NewAmbiguousMatchError("a", nil), true},
		{"plain error", errors.New("boom"), false},
		{"wrapped domain error", fmt.Errorf("context: %w", NewBookingError("x", nil)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{"nil", nil, SeverityDebug},
		{"booking error", NewBookingError("x", nil), SeverityWarning},
		{"store error", NewStoreError("x", nil), SeverityError},
		{"ambiguous", NewAmbiguousMatchError("a", nil), SeverityInfo},
		{"plain error", errors.New("boom"), SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverity(tt.err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDomainError(t *testing.T) {
	if !IsDomainError(NewBookingError("x", nil)) {
		t.Error("IsDomainError(BookingError) = false, want true")
	}
	if !IsDomainError(NewStoreError("x", nil)) {
		t.Error("IsDomainError(StoreError) = false, want true")
	}
	if IsDomainError(NewNotFoundError("passenger", "a")) {
		t.Error("IsDomainError(NotFoundError) = true, want false")
	}
	if IsDomainError(nil) {
		t.Error("IsDomainError(nil) = true, want false")
	}
}

// -----------------------------------------------------------------------------
// Wrap Tests
// -----------------------------------------------------------------------------

func TestWrap(t *testing.T) {
	base := ErrSeatTaken
	err := Wrap(base, "booking 1A")

	if !errors.Is(err, base) {
		t.Error("wrapped error lost its cause")
	}
	if !strings.Contains(err.Error(), "booking 1A") {
		t.Errorf("Error() = %q, missing context", err.Error())
	}

	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrInvalidSeat, "label %q", "9Z")

	if !errors.Is(err, ErrInvalidSeat) {
		t.Error("wrapped error lost its cause")
	}
	if !strings.Contains(err.Error(), `label "9Z"`) {
		t.Errorf("Error() = %q, missing formatted context", err.Error())
	}

	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}
}
