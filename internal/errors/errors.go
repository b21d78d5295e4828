// Package errors provides centralized error definitions and error handling
// utilities for the Seatwise codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - BookingError: errors raised while booking or cancelling a seat
//   - StoreError: errors related to the bookings file (save/load/decode)
//
// Semantic errors represent common error conditions:
//   - NotFoundError: passenger or resource not found
//   - ValidationError: invalid input or state
//   - AmbiguousMatchError: a query matched more than one passenger
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewBookingError("seat unavailable", errors.ErrSeatTaken).WithSeat("1A")
//
//	// Semantic error
//	err := errors.NewNotFoundError("passenger", "alice")
//
// Checking errors:
//
//	// Check for specific sentinel errors
//	if errors.Is(err, errors.ErrSeatTaken) { ... }
//
//	// Check for error types
//	var ambiguous *errors.AmbiguousMatchError
//	if errors.As(err, &ambiguous) { ... }
//
//	// Use classification helpers
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Booking-related sentinel errors
var (
	// ErrInvalidInput indicates that a passenger name or flight code failed validation.
	ErrInvalidInput = New("invalid input")
	// ErrInvalidSeat indicates a malformed or out-of-range seat reference.
	ErrInvalidSeat = New("invalid seat")
	// ErrSeatTaken indicates that the requested seat is already booked.
	ErrSeatTaken = New("seat already booked")
	// ErrNotBooked indicates an attempt to release a seat that is not booked.
	ErrNotBooked = New("seat not booked")
	// ErrNoSeatsAvailable indicates that every seat on the grid is booked.
	ErrNoSeatsAvailable = New("no seats available")
	// ErrNotFound indicates that no passenger matched the query.
	ErrNotFound = New("passenger not found")
	// ErrAmbiguousMatch indicates that a query matched more than one passenger.
	ErrAmbiguousMatch = New("multiple passengers match")
)

// Store-related sentinel errors
var (
	// ErrCorruptRecord indicates that a persisted bookings line could not be parsed.
	ErrCorruptRecord = New("corrupt booking record")
	// ErrFileNotFound indicates that the bookings file does not exist yet.
	ErrFileNotFound = New("bookings file not found")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// SeatwiseError is the base interface for all Seatwise errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type SeatwiseError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	// This is used by errors.Is() for error comparison.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// BookingError represents errors raised while booking or cancelling a seat.
//
// Example:
//
//	err := errors.NewBookingError("seat unavailable", errors.ErrSeatTaken)
//	err = err.WithPassenger("Alice").WithSeat("1A")
//	fmt.Println(err) // "booking error [passenger=Alice, seat=1A]: seat unavailable: seat already booked"
type BookingError struct {
	baseError
	Passenger string
	SeatLabel string
	Flight    string
}

// NewBookingError creates a new BookingError.
func NewBookingError(message string, cause error) *BookingError {
	return &BookingError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithPassenger adds a passenger name to the error context.
func (e *BookingError) WithPassenger(name string) *BookingError {
	e.Passenger = name
	return e
}

// WithSeat adds a seat label to the error context.
func (e *BookingError) WithSeat(label string) *BookingError {
	e.SeatLabel = label
	return e
}

// WithFlight adds a flight code to the error context.
func (e *BookingError) WithFlight(code string) *BookingError {
	e.Flight = code
	return e
}

// WithSeverity sets the error severity.
func (e *BookingError) WithSeverity(s Severity) *BookingError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *BookingError) Error() string {
	var parts []string
	if e.Passenger != "" {
		parts = append(parts, fmt.Sprintf("passenger=%s", e.Passenger))
	}
	if e.SeatLabel != "" {
		parts = append(parts, fmt.Sprintf("seat=%s", e.SeatLabel))
	}
	if e.Flight != "" {
		parts = append(parts, fmt.Sprintf("flight=%s", e.Flight))
	}

	prefix := "booking error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("booking error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *BookingError) Is(target error) bool {
	if _, ok := target.(*BookingError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// StoreError represents errors related to the bookings file.
//
// Example:
//
//	err := errors.NewStoreError("decode failed", errors.ErrCorruptRecord)
//	err = err.WithPath("bookings.txt").WithLine(3)
type StoreError struct {
	baseError
	Path string
	Line int // 1-based line number, 0 when not applicable
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithPath adds a file path to the error context.
func (e *StoreError) WithPath(path string) *StoreError {
	e.Path = path
	return e
}

// WithLine adds a 1-based line number to the error context.
func (e *StoreError) WithLine(line int) *StoreError {
	e.Line = line
	return e
}

// WithSeverity sets the error severity.
func (e *StoreError) WithSeverity(s Severity) *StoreError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *StoreError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line=%d", e.Line))
	}

	prefix := "store error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("store error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *StoreError) Is(target error) bool {
	if _, ok := target.(*StoreError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("passenger", "alice")
//	fmt.Println(err) // "passenger 'alice' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if errors.Is(target, ErrNotFound) {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("name cannot be empty")
//	err = err.WithField("name").WithValue("")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// Candidate describes one passenger record that matched an ambiguous query.
// It is a display-oriented snapshot so the errors package stays free of
// domain imports.
type Candidate struct {
	Name   string
	Flight string
	Seat   string
}

// String formats the candidate for user display.
func (c Candidate) String() string {
	return fmt.Sprintf("%s | Seat %s | Flight %s", c.Name, c.Seat, c.Flight)
}

// AmbiguousMatchError indicates that a cancellation query matched more than
// one passenger. Callers present Candidates to the user and retry with an
// unambiguous selection.
//
// Example:
//
//	err := errors.NewAmbiguousMatchError("smith", candidates)
//	var ambiguous *errors.AmbiguousMatchError
//	if errors.As(err, &ambiguous) {
//	    promptUser(ambiguous.Candidates)
//	}
type AmbiguousMatchError struct {
	baseError
	Query      string
	Candidates []Candidate
}

// NewAmbiguousMatchError creates a new AmbiguousMatchError.
func NewAmbiguousMatchError(query string, candidates []Candidate) *AmbiguousMatchError {
	return &AmbiguousMatchError{
		baseError: baseError{
			message:    fmt.Sprintf("%d passengers match '%s'", len(candidates), query),
			cause:      ErrAmbiguousMatch,
			severity:   SeverityInfo,
			userFacing: true,
		},
		Query:      query,
		Candidates: candidates,
	}
}

// Error returns the formatted error message.
func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d passengers match '%s': selection required", len(e.Candidates), e.Query)
}

// Is checks if this error matches the target.
func (e *AmbiguousMatchError) Is(target error) bool {
	if _, ok := target.(*AmbiguousMatchError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end
// users. This checks for:
//   - Errors implementing SeatwiseError with IsUserFacing() returning true
//   - Semantic errors (NotFoundError, ValidationError)
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    displayToUser(err.Error())
//	} else {
//	    displayToUser("An internal error occurred")
//	    log.Error("internal error", "err", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var swErr SeatwiseError
	if As(err, &swErr) {
		return swErr.IsUserFacing()
	}

	var notFound *NotFoundError
	var validation *ValidationError
	if As(err, &notFound) || As(err, &validation) {
		return true
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement SeatwiseError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var swErr SeatwiseError
	if As(err, &swErr) {
		return swErr.Severity()
	}

	return SeverityError
}

// IsDomainError returns true if the error is a domain-specific error
// (BookingError or StoreError).
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}

	var bookingErr *BookingError
	var storeErr *StoreError

	return As(err, &bookingErr) || As(err, &storeErr)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to save bookings")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to load %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
