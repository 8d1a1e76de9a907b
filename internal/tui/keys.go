package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndri/hallbook/internal/dateutil"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeDate:
		return m.handleDateKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation
	case "h", "left":
		m.date = m.date.AddDate(0, 0, -1)
		m.cursor = 0
		m.loading = true
		return m, m.loadCurrentDay()
	case "l", "right":
		m.date = m.date.AddDate(0, 0, 1)
		m.cursor = 0
		m.loading = true
		return m, m.loadCurrentDay()
	case "t":
		m.date = dateutil.TruncateToDay(time.Now())
		m.cursor = 0
		m.loading = true
		return m, m.loadCurrentDay()
	case "g":
		m.dateInput.Reset()
		m.dateInput.Focus()
		m.mode = ModeDate
		return m, nil

	// Cursor movement
	case "j", "down":
		if m.cursor < len(m.bookings)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	// Actions
	case "b", "enter":
		m.openForm()
		return m, nil
	case "d", "x":
		if b := m.selectedBooking(); b != nil {
			m.confirmID = b.ID
			m.mode = ModeConfirm
		}
		return m, nil
	case "y":
		if len(m.bookings) > 0 {
			return m, copyDay(m.bookings)
		}
	case "e":
		return m, writeReport(m.service, m.config.Report.Path)
	case "r":
		m.loading = true
		return m, m.loadCurrentDay()
	}

	return m, nil
}

// handleFormKeys handles the booking form modal.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil

	case "tab", "shift+tab":
		forward := msg.String() == "tab"
		m.formFocus = cycleFocus(m.formFocus, forward)
		m.formWho.Blur()
		m.formDesc.Blur()
		switch m.formFocus {
		case fieldWho:
			m.formWho.Focus()
		case fieldDesc:
			m.formDesc.Focus()
		}
		return m, nil

	case "enter":
		return m, createBooking(
			m.service,
			m.date,
			m.slots[m.formStart],
			m.slots[m.formEnd],
			m.formWho.Value(),
			m.formDesc.Value(),
		)
	}

	// Slot selection on the time fields
	switch m.formFocus {
	case fieldStart:
		switch msg.String() {
		case "left", "down", "h", "j":
			if m.formStart > 0 {
				m.formStart--
			}
		case "right", "up", "l", "k":
			if m.formStart < len(m.slots)-1 {
				m.formStart++
			}
		}
		// Keep the window well formed while picking
		if m.formEnd <= m.formStart && m.formStart < len(m.slots)-1 {
			m.formEnd = m.formStart + 1
		}
		return m, nil
	case fieldEnd:
		switch msg.String() {
		case "left", "down", "h", "j":
			if m.formEnd > m.formStart+1 {
				m.formEnd--
			}
		case "right", "up", "l", "k":
			if m.formEnd < len(m.slots)-1 {
				m.formEnd++
			}
		}
		return m, nil
	}

	// Text fields
	var cmd tea.Cmd
	switch m.formFocus {
	case fieldWho:
		m.formWho, cmd = m.formWho.Update(msg)
	case fieldDesc:
		m.formDesc, cmd = m.formDesc.Update(msg)
	}
	return m, cmd
}

// handleConfirmKeys handles the cancel confirmation modal.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmID
		m.confirmID = 0
		return m, cancelBooking(m.service, id)
	case "n", "esc":
		m.confirmID = 0
		m.mode = ModeNormal
	}
	return m, nil
}

// handleDateKeys handles the date jump prompt.
func (m Model) handleDateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil
	case "enter":
		date, err := dateutil.ParseDate(m.dateInput.Value())
		if err != nil {
			m.errText = err.Error()
			return m, clearStatusAfter(statusTimeout)
		}
		m.date = date
		m.cursor = 0
		m.mode = ModeNormal
		m.loading = true
		return m, m.loadCurrentDay()
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func cycleFocus(focus int, forward bool) int {
	if forward {
		return (focus + 1) % fieldCount
	}
	return (focus + fieldCount - 1) % fieldCount
}
