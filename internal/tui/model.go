// Package tui implements the interactive Seatwise menu as a Bubbletea
// program. One model drives the whole surface: a seven-item main menu and
// the prompt flows (book, cancel, search) layered on top of it. All domain
// work is delegated to the session controller; the TUI only renders results
// and typed failures.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seatwise/seatwise/internal/ledger"
	"github.com/seatwise/seatwise/internal/session"
)

// mode identifies which screen of the menu loop is active.
type mode int

const (
	modeMenu mode = iota
	modeBookName
	modeBookFlight
	modeBookSeat
	modeCancelQuery
	modeCancelPick
	modeSearchQuery
	modeSearchResults
	modeSeats
)

// menuItem is one entry of the main menu.
type menuItem struct {
	label string
	run   func(m Model) (Model, tea.Cmd)
}

// Model is the Bubbletea model for the interactive menu.
type Model struct {
	session      *session.Session
	bookingsPath string
	showLegend   bool

	mode   mode
	cursor int
	items  []menuItem
	input  textinput.Model

	// Book flow scratch state
	pendingName   string
	pendingFlight string

	// Cancel disambiguation candidates and search results
	candidates []ledger.Passenger
	results    []ledger.Passenger

	status    string
	statusErr bool

	width    int
	height   int
	quitting bool
}

// NewModel creates the menu model for the given session.
// bookingsPath is the file used by the Save and Load actions.
func NewModel(sess *session.Session, bookingsPath string, showLegend bool) Model {
	ti := textinput.New()
	ti.CharLimit = 60
	ti.Width = 40

	m := Model{
		session:      sess,
		bookingsPath: bookingsPath,
		showLegend:   showLegend,
		input:        ti,
	}
	m.items = []menuItem{
		{label: "Book a Ticket", run: Model.startBook},
		{label: "View Available Seats", run: Model.showSeats},
		{label: "Cancel a Booking", run: Model.startCancel},
		{label: "Search Passenger", run: Model.startSearch},
		{label: "Save Bookings", run: Model.saveBookings},
		{label: "Load Bookings", run: Model.loadBookings},
		{label: "Exit", run: Model.quit},
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// startBook begins the booking prompt flow.
func (m Model) startBook() (Model, tea.Cmd) {
	m.mode = modeBookName
	m.pendingName = ""
	m.pendingFlight = ""
	return m.prompt("Passenger name")
}

// showSeats switches to the full seat map view.
func (m Model) showSeats() (Model, tea.Cmd) {
	m.mode = modeSeats
	return m, nil
}

// startCancel begins the cancellation prompt flow.
func (m Model) startCancel() (Model, tea.Cmd) {
	m.mode = modeCancelQuery
	m.candidates = nil
	return m.prompt("Passenger name to cancel")
}

// startSearch begins the search prompt flow.
func (m Model) startSearch() (Model, tea.Cmd) {
	m.mode = modeSearchQuery
	m.results = nil
	return m.prompt("Name keyword")
}

// saveBookings writes the ledger to the bookings file.
func (m Model) saveBookings() (Model, tea.Cmd) {
	if err := m.session.Save(m.bookingsPath); err != nil {
		return m.fail(err), nil
	}
	return m.ok("Saved %d record(s) to %s", len(m.session.Passengers()), m.bookingsPath), nil
}

// loadBookings replaces the session state from the bookings file.
// A missing file means no prior session and leaves the session untouched.
func (m Model) loadBookings() (Model, tea.Cmd) {
	if err := m.session.Load(m.bookingsPath); err != nil {
		if isNoPriorSession(err) {
			return m.warn("No bookings file at %s yet, nothing loaded", m.bookingsPath), nil
		}
		return m.fail(err), nil
	}
	return m.ok("Loaded %d record(s) from %s", len(m.session.Passengers()), m.bookingsPath), nil
}

// quit exits the program.
func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
