// Package store persists the passenger ledger to a flat text file.
//
// The format is one record per line, three fields separated by '|':
//
//	name|flightCode|row,col
//
// where row and col are the zero-based grid coordinates. Passenger names
// must not contain the delimiter; the session layer enforces that at
// booking time so the codec never needs escaping. There is no header,
// trailing metadata, or checksum.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seatwise/seatwise/internal/errors"
	"github.com/seatwise/seatwise/internal/ledger"
	"github.com/seatwise/seatwise/internal/seatmap"
)

// Delimiter separates the fields of a persisted record.
const Delimiter = "|"

// DefaultFileName is the bookings file created when no path is configured.
const DefaultFileName = "bookings.txt"

// EncodeRecord serializes a passenger record to its line representation.
func EncodeRecord(p ledger.Passenger) string {
	return fmt.Sprintf("%s%s%s%s%d,%d", p.Name, Delimiter, p.FlightCode, Delimiter, p.Seat.Row, p.Seat.Col)
}

// DecodeRecord parses one line into a passenger record. Malformed lines
// (wrong field count, empty name or flight code, non-numeric or out-of-range
// coordinates) fail with ErrCorruptRecord.
func DecodeRecord(line string) (ledger.Passenger, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != 3 {
		return ledger.Passenger{}, errors.Wrapf(errors.ErrCorruptRecord, "expected 3 fields, got %d", len(fields))
	}

	name := strings.TrimSpace(fields[0])
	flight := strings.TrimSpace(fields[1])
	if name == "" || flight == "" {
		return ledger.Passenger{}, errors.Wrap(errors.ErrCorruptRecord, "empty name or flight code")
	}

	coords := strings.Split(strings.TrimSpace(fields[2]), ",")
	if len(coords) != 2 {
		return ledger.Passenger{}, errors.Wrapf(errors.ErrCorruptRecord, "malformed seat %q", fields[2])
	}

	row, err := strconv.Atoi(strings.TrimSpace(coords[0]))
	if err != nil {
		return ledger.Passenger{}, errors.Wrapf(errors.ErrCorruptRecord, "non-numeric seat row %q", coords[0])
	}
	col, err := strconv.Atoi(strings.TrimSpace(coords[1]))
	if err != nil {
		return ledger.Passenger{}, errors.Wrapf(errors.ErrCorruptRecord, "non-numeric seat col %q", coords[1])
	}

	seat := seatmap.Seat{Row: row, Col: col}
	if !seat.InGrid() {
		return ledger.Passenger{}, errors.Wrapf(errors.ErrCorruptRecord, "seat (%d,%d) out of range", row, col)
	}

	return ledger.Passenger{Name: name, FlightCode: flight, Seat: seat}, nil
}

// Save writes all records to path in ledger order, overwriting any previous
// contents. Write failures surface as a StoreError; the in-memory session is
// unaffected either way.
func Save(path string, records []ledger.Passenger) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewStoreError("failed to create bookings file", err).WithPath(path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range records {
		if _, err := w.WriteString(EncodeRecord(p) + "\n"); err != nil {
			return errors.NewStoreError("failed to write booking record", err).WithPath(path)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.NewStoreError("failed to flush bookings file", err).WithPath(path)
	}
	return nil
}

// Load reads all records from path. Blank lines are skipped; any malformed
// line fails the whole load with ErrCorruptRecord carrying the line number;
// partial loads are never returned. A missing file fails with ErrFileNotFound
// (also matching os.ErrNotExist), which callers treat as "no prior session".
func Load(path string) ([]ledger.Passenger, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewStoreError("no bookings file", errors.Join(errors.ErrFileNotFound, err)).WithPath(path)
		}
		return nil, errors.NewStoreError("failed to open bookings file", err).WithPath(path)
	}
	defer f.Close()

	var records []ledger.Passenger
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := DecodeRecord(line)
		if err != nil {
			return nil, errors.NewStoreError("failed to decode booking record", err).WithPath(path).WithLine(lineNo)
		}
		records = append(records, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewStoreError("failed to read bookings file", err).WithPath(path)
	}

	return records, nil
}
