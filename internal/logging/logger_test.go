package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// readEntries parses every JSON line from the log file.
func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "INFO")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("booked ticket", "passenger", "Alice", "seat", "1A")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	path := filepath.Join(dir, "seatwise.log")
	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry["msg"] != "booked ticket" {
		t.Errorf("msg = %v, want %q", entry["msg"], "booked ticket")
	}
	if entry["passenger"] != "Alice" {
		t.Errorf("passenger = %v, want Alice", entry["passenger"])
	}
	if entry["seat"] != "1A" {
		t.Errorf("seat = %v, want 1A", entry["seat"])
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "WARN")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")
	logger.Close()

	entries := readEntries(t, filepath.Join(dir, "seatwise.log"))
	if len(entries) != 2 {
		t.Fatalf("got %d entries at WARN level, want 2", len(entries))
	}
	if entries[0]["level"] != "WARN" || entries[1]["level"] != "ERROR" {
		t.Errorf("levels = %v, %v; want WARN, ERROR", entries[0]["level"], entries[1]["level"])
	}
}

func TestChildLoggerAttributes(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "DEBUG")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	child := logger.WithOperation("book").WithFlight("FL100")
	child.Info("auto-assigned seat", "seat", "2B")

	// The parent logger carries no attributes of its own
	logger.Info("plain entry")
	logger.Close()

	entries := readEntries(t, filepath.Join(dir, "seatwise.log"))
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	withAttrs := entries[0]
	if withAttrs["operation"] != "book" {
		t.Errorf("operation = %v, want book", withAttrs["operation"])
	}
	if withAttrs["flight"] != "FL100" {
		t.Errorf("flight = %v, want FL100", withAttrs["flight"])
	}
	if withAttrs["seat"] != "2B" {
		t.Errorf("seat = %v, want 2B", withAttrs["seat"])
	}

	plain := entries[1]
	if _, ok := plain["operation"]; ok {
		t.Error("parent logger entry carries child attribute")
	}
}

func TestWith(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "DEBUG")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	child := logger.With("session", "s1", "records", 3)
	child.Info("loaded bookings")
	logger.Close()

	entries := readEntries(t, filepath.Join(dir, "seatwise.log"))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["session"] != "s1" {
		t.Errorf("session = %v, want s1", entries[0]["session"])
	}
	if entries[0]["records"] != float64(3) {
		t.Errorf("records = %v, want 3", entries[0]["records"])
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	logger, err := NewLogger(t.TempDir(), "INFO")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestStderrLoggerCloseIsNoop(t *testing.T) {
	logger, err := NewLogger("", "INFO")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	// Must not panic and must accept children
	logger.Info("discarded")
	logger.WithOperation("book").Debug("also discarded")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
