package ledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/seatwise/seatwise/internal/seatmap"
)

func record(name, flight string, row, col int) Passenger {
	return Passenger{Name: name, FlightCode: flight, Seat: seatmap.Seat{Row: row, Col: col}}
}

func TestPassengerString(t *testing.T) {
	p := record("Alice Chen", "FL100", 0, 0)
	want := "Alice Chen | Seat 1A | Flight FL100"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAppendAndAll(t *testing.T) {
	l := New()
	if l.Len() != 0 {
		t.Fatalf("new ledger Len() = %d, want 0", l.Len())
	}

	alice := record("Alice", "FL100", 0, 0)
	bob := record("Bob", "FL200", 0, 1)
	l.Append(alice)
	l.Append(bob)

	want := []Passenger{alice, bob}
	if diff := cmp.Diff(want, l.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	l := New()
	l.Append(record("Alice", "FL100", 0, 0))

	got := l.All()
	got[0].Name = "Mallory"

	if p, _ := l.At(0); p.Name != "Alice" {
		t.Errorf("mutating All() result changed the ledger: %q", p.Name)
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	l := New()
	l.Append(record("Alice", "FL100", 0, 0))
	l.Append(record("Bob", "FL100", 0, 1))
	l.Append(record("Carol", "FL100", 0, 2))

	removed, ok := l.RemoveAt(1)
	if !ok {
		t.Fatal("RemoveAt(1) failed")
	}
	if removed.Name != "Bob" {
		t.Errorf("removed %q, want Bob", removed.Name)
	}

	want := []Passenger{
		record("Alice", "FL100", 0, 0),
		record("Carol", "FL100", 0, 2),
	}
	if diff := cmp.Diff(want, l.All()); diff != "" {
		t.Errorf("All() mismatch after removal (-want +got):\n%s", diff)
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	l := New()
	l.Append(record("Alice", "FL100", 0, 0))

	if _, ok := l.RemoveAt(-1); ok {
		t.Error("RemoveAt(-1) succeeded")
	}
	if _, ok := l.RemoveAt(1); ok {
		t.Error("RemoveAt(1) succeeded on single-record ledger")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after failed removals, want 1", l.Len())
	}
}

func TestMatch(t *testing.T) {
	l := New()
	l.Append(record("Alice Chen", "FL100", 0, 0))
	l.Append(record("Bob Alicedottir", "FL100", 0, 1))
	l.Append(record("Carol", "FL100", 0, 2))

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "substring matches two", query: "alice", want: []int{0, 1}},
		{name: "case insensitive", query: "ALICE", want: []int{0, 1}},
		{name: "unique match", query: "carol", want: []int{2}},
		{name: "whitespace trimmed", query: "  carol  ", want: []int{2}},
		{name: "no match", query: "dave", want: nil},
		{name: "blank matches nothing", query: "   ", want: nil},
		{name: "empty matches nothing", query: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, l.Match(tt.query)); diff != "" {
				t.Errorf("Match(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFindExact(t *testing.T) {
	l := New()
	l.Append(record("Alice", "FL100", 0, 0))
	l.Append(record("Alice Chen", "FL100", 0, 1))
	l.Append(record("alice", "FL200", 0, 2))

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "exact skips substring matches", query: "Alice", want: []int{0, 2}},
		{name: "case insensitive", query: "ALICE CHEN", want: []int{1}},
		{name: "whitespace trimmed", query: "  alice  ", want: []int{0, 2}},
		{name: "no match", query: "Alic", want: nil},
		{name: "blank matches nothing", query: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, l.FindExact(tt.query)); diff != "" {
				t.Errorf("FindExact(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	l := New()
	l.Append(record("Alice", "FL100", 0, 0))
	l.Append(record("Malice", "FL200", 0, 1))

	got := l.Search("lice")
	if len(got) != 2 {
		t.Fatalf("Search returned %d records, want 2", len(got))
	}
	if got[0].Name != "Alice" || got[1].Name != "Malice" {
		t.Errorf("Search order = %q, %q; want Alice, Malice", got[0].Name, got[1].Name)
	}

	if got := l.Search("nobody"); len(got) != 0 {
		t.Errorf("Search miss returned %d records, want 0", len(got))
	}
}

func TestHoldsSeat(t *testing.T) {
	l := New()
	l.Append(record("Alice", "FL100", 2, 3))

	if !l.HoldsSeat(seatmap.Seat{Row: 2, Col: 3}) {
		t.Error("HoldsSeat missed a held seat")
	}
	if l.HoldsSeat(seatmap.Seat{Row: 0, Col: 0}) {
		t.Error("HoldsSeat reported an unheld seat")
	}
}
