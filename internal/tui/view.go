package tui

import (
	"fmt"
	"strings"

	"github.com/seatwise/seatwise/internal/ledger"
	"github.com/seatwise/seatwise/internal/seatmap"
	"github.com/seatwise/seatwise/internal/tui/styles"
	"github.com/seatwise/seatwise/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Header.Render("Seatwise: Airline Seat Booking"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeMenu:
		m.viewMenu(&b)
	case modeSeats:
		m.viewSeats(&b)
	case modeSearchResults:
		m.viewResults(&b)
	case modeCancelPick:
		m.viewCancelPick(&b)
	case modeBookSeat:
		// Show the grid while the passenger picks a seat.
		m.viewGrid(&b)
		b.WriteString("\n")
		m.viewPrompt(&b)
	default:
		m.viewPrompt(&b)
	}

	if m.status != "" {
		status := m.status
		if m.width > 0 {
			status = util.TruncateANSI(status, m.width)
		}
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(styles.ErrorMsg.Render(status))
		} else {
			b.WriteString(styles.SuccessMsg.Render(status))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewHelp())
	return b.String()
}

// viewMenu renders the seven-item main menu.
func (m Model) viewMenu(b *strings.Builder) {
	for i, item := range m.items {
		line := fmt.Sprintf("%d. %s", i+1, item.label)
		if i == m.cursor {
			b.WriteString(styles.Secondary.Render("> "))
			b.WriteString(styles.Text.Bold(true).Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(styles.Muted.Render(line))
		}
		b.WriteString("\n")
	}
}

// viewSeats renders the full seat view with the availability count.
func (m Model) viewSeats(b *strings.Builder) {
	m.viewGrid(b)
	_, available := m.session.ListSeats()
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("Available seats: %d of %d", available, seatmap.Seats)))
	b.WriteString("\n")
}

// viewGrid renders the seat map with column letters and row numbers.
func (m Model) viewGrid(b *strings.Builder) {
	rows, _ := m.session.ListSeats()

	header := "     "
	for c := 0; c < seatmap.Cols; c++ {
		header += string(rune('A'+c)) + "  "
	}
	b.WriteString(styles.Muted.Render(strings.TrimRight(header, " ")))
	b.WriteString("\n")

	for r, row := range rows {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%2d | ", r+1)))
		for _, ch := range row {
			glyph := string(ch)
			if ch == 'X' {
				b.WriteString(styles.SeatBooked.Render(glyph))
			} else {
				b.WriteString(styles.SeatAvailable.Render(glyph))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	if m.showLegend {
		b.WriteString(styles.Muted.Render("Legend: O = available, X = booked"))
		b.WriteString("\n")
	}
}

// viewResults renders the search results screen.
func (m Model) viewResults(b *strings.Builder) {
	if len(m.results) == 0 {
		b.WriteString(styles.Muted.Render("No matching passengers found."))
		b.WriteString("\n")
		return
	}

	b.WriteString(styles.Text.Render(fmt.Sprintf("Found %d record(s):", len(m.results))))
	b.WriteString("\n")
	m.viewRecords(b, m.results)
}

// viewCancelPick renders the disambiguation list above the number prompt.
func (m Model) viewCancelPick(b *strings.Builder) {
	b.WriteString(styles.Warning.Render("Multiple bookings match. Choose one to cancel:"))
	b.WriteString("\n")
	m.viewRecords(b, m.candidates)
	b.WriteString("\n")
	m.viewPrompt(b)
}

// viewRecords renders a numbered list of passenger records.
func (m Model) viewRecords(b *strings.Builder, records []ledger.Passenger) {
	for i, p := range records {
		b.WriteString(styles.Text.Render(fmt.Sprintf("  %d. %s", i+1, p)))
		b.WriteString("\n")
	}
}

// viewPrompt renders the active textinput.
func (m Model) viewPrompt(b *strings.Builder) {
	b.WriteString(m.input.View())
	b.WriteString("\n")
}

// viewHelp renders the context-sensitive help bar.
func (m Model) viewHelp() string {
	key := styles.HelpKey.Render

	switch m.mode {
	case modeMenu:
		return styles.HelpBar.Render(
			key("j/k") + " navigate  " + key("1-7") + " jump  " + key("enter") + " select  " + key("q") + " quit")
	case modeSeats, modeSearchResults:
		return styles.HelpBar.Render(key("any key") + " back to menu")
	default:
		return styles.HelpBar.Render(key("enter") + " confirm  " + key("esc") + " back to menu")
	}
}
