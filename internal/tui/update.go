package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seatwise/seatwise/internal/errors"
	"github.com/seatwise/seatwise/internal/seatmap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeSeats, modeSearchResults:
			// Any key dismisses the full-screen views.
			m.mode = modeMenu
			return m, nil
		default:
			return m.updatePrompt(msg)
		}
	}

	return m, nil
}

// updateMenu handles keys on the main menu.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.items) - 1
		}

	case "down", "j":
		m.cursor++
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}

	case "enter", " ":
		m.status = ""
		return m.items[m.cursor].run(m)

	default:
		// Digit shortcuts select and run a menu item directly.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.items) {
			m.cursor = n - 1
			m.status = ""
			return m.items[m.cursor].run(m)
		}
	}

	return m, nil
}

// updatePrompt handles keys while a textinput flow is active.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		m.input.SetValue("")
		return m.submit(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit advances the active prompt flow with the entered value.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeBookName:
		if strings.TrimSpace(value) == "" {
			return m.backToMenu(m.fail(errors.NewValidationError("passenger name cannot be empty").WithField("name"))), nil
		}
		m.pendingName = value
		m.mode = modeBookFlight
		return m.prompt("Flight code (e.g. MH123)")

	case modeBookFlight:
		if strings.TrimSpace(value) == "" {
			return m.backToMenu(m.fail(errors.NewValidationError("flight code cannot be empty").WithField("flightCode"))), nil
		}
		m.pendingFlight = value
		m.mode = modeBookSeat
		return m.prompt("Seat (e.g. 1A, blank = auto)")

	case modeBookSeat:
		return m.backToMenu(m.finishBook(value)), nil

	case modeCancelQuery:
		return m.finishCancelQuery(value)

	case modeCancelPick:
		return m.backToMenu(m.finishCancelPick(value)), nil

	case modeSearchQuery:
		m.results = m.session.SearchPassengers(value)
		m.mode = modeSearchResults
		m.input.Blur()
		return m, nil
	}

	m.mode = modeMenu
	return m, nil
}

// finishBook books the ticket once all three prompts are answered.
func (m Model) finishBook(seatValue string) Model {
	var requested *seatmap.Seat
	trimmed := strings.TrimSpace(seatValue)
	if trimmed != "" && !strings.EqualFold(trimmed, "auto") {
		seat, err := seatmap.ParseSeat(trimmed)
		if err != nil {
			return m.fail(err)
		}
		requested = &seat
	}

	p, err := m.session.BookTicket(m.pendingName, m.pendingFlight, requested)
	if err != nil {
		return m.fail(err)
	}
	return m.ok("Booked: %s", p)
}

// finishCancelQuery resolves the cancellation query. An ambiguous match
// switches to the pick prompt instead of failing the flow.
func (m Model) finishCancelQuery(value string) (tea.Model, tea.Cmd) {
	p, err := m.session.CancelBooking(value)
	if err == nil {
		return m.backToMenu(m.ok("Cancelled: %s. Seat %s is available again", p, p.Seat.Label())), nil
	}

	var ambiguous *errors.AmbiguousMatchError
	if errors.As(err, &ambiguous) {
		// Same substring policy as CancelBooking, so the records line up
		// with the candidates the error reported.
		m.candidates = m.session.SearchPassengers(value)
		m.mode = modeCancelPick
		next, cmd := m.prompt(fmt.Sprintf("Select 1-%d", len(m.candidates)))
		return next, cmd
	}

	return m.backToMenu(m.fail(err)), nil
}

// finishCancelPick cancels the candidate the user selected by number.
func (m Model) finishCancelPick(value string) Model {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > len(m.candidates) {
		return m.warn("Invalid selection, cancellation aborted")
	}

	p := m.candidates[n-1]
	if err := m.session.CancelRecord(p); err != nil {
		return m.fail(err)
	}
	return m.ok("Cancelled: %s. Seat %s is available again", p, p.Seat.Label())
}

// prompt focuses the shared textinput with a new placeholder.
func (m Model) prompt(placeholder string) (Model, tea.Cmd) {
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	return m, textinput.Blink
}

// backToMenu returns the model to the main menu after a finished flow.
func (m Model) backToMenu(next Model) Model {
	next.mode = modeMenu
	next.input.Blur()
	return next
}

// ok records a success status line.
func (m Model) ok(format string, args ...any) Model {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
	return m
}

// warn records an informational status line.
func (m Model) warn(format string, args ...any) Model {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
	return m
}

// fail records an error status line, hiding non-user-facing detail.
func (m Model) fail(err error) Model {
	if errors.IsUserFacing(err) {
		m.status = err.Error()
	} else {
		m.status = "an internal error occurred: " + err.Error()
	}
	m.statusErr = true
	return m
}

// isNoPriorSession reports whether a load failure just means the bookings
// file has not been created yet.
func isNoPriorSession(err error) bool {
	return errors.Is(err, errors.ErrFileNotFound)
}
