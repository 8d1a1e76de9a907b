package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the day view.
func (m Model) View() string {
	var sb strings.Builder

	title := fmt.Sprintf("%s — %s", m.config.Hall.Name, m.date.Format("Monday, January 2, 2006"))
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(m.styles.Muted.Render("Loading..."))
		sb.WriteString("\n")
	case len(m.bookings) == 0:
		sb.WriteString(m.styles.Muted.Render("No bookings for this date."))
		sb.WriteString("\n")
	default:
		for i, b := range m.bookings {
			row := fmt.Sprintf("#%-4d %s  %-20s %s",
				b.ID,
				m.styles.Booked.Render(fmt.Sprintf("%s-%s", b.Start, b.End)),
				b.BookedBy,
				m.styles.Muted.Render(truncate(b.Description, 40)),
			)
			if i == m.cursor && m.mode == ModeNormal {
				sb.WriteString(m.styles.RowSelected.Render("> " + row))
			} else {
				sb.WriteString(m.styles.Row.Render("  " + row))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Free"))
	sb.WriteString(" ")
	if len(m.free) == 0 && !m.loading {
		sb.WriteString(m.styles.Warning.Render("fully booked"))
	} else {
		windows := make([]string, 0, len(m.free))
		for _, w := range m.free {
			windows = append(windows, fmt.Sprintf("%s-%s", w.Start, w.End))
		}
		sb.WriteString(m.styles.Free.Render(strings.Join(windows, "  ")))
	}
	sb.WriteString("\n\n")

	switch {
	case m.errText != "":
		sb.WriteString(m.styles.Error.Render(m.errText))
		sb.WriteString("\n")
	case m.status != "":
		sb.WriteString(m.styles.Status.Render(m.status))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render(m.helpLine()))

	content := sb.String()

	switch m.mode {
	case ModeForm:
		return m.overlayModal(content, m.formView())
	case ModeConfirm:
		return m.overlayModal(content, m.confirmView())
	case ModeDate:
		return m.overlayModal(content, m.dateView())
	}
	return content
}

func (m Model) helpLine() string {
	switch m.mode {
	case ModeForm:
		return "tab: next field • ←/→: pick slot • enter: book • esc: close"
	case ModeConfirm:
		return "y: cancel booking • n: keep it"
	case ModeDate:
		return "enter: go • esc: close"
	default:
		return "h/l: day • j/k: select • b: book • d: cancel • g: go to date • t: today • y: copy • e: report • q: quit"
	}
}

func (m Model) formView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.ModalTitle.Render("New booking — " + m.date.Format("2006-01-02")))
	sb.WriteString("\n")

	sb.WriteString(m.fieldLabel("Booked by", fieldWho))
	sb.WriteString(m.formWho.View())
	sb.WriteString("\n")

	sb.WriteString(m.fieldLabel("Description", fieldDesc))
	sb.WriteString(m.formDesc.View())
	sb.WriteString("\n")

	sb.WriteString(m.fieldLabel("Start", fieldStart))
	sb.WriteString(m.slotValue(m.formStart, m.formFocus == fieldStart))
	sb.WriteString("\n")

	sb.WriteString(m.fieldLabel("End", fieldEnd))
	sb.WriteString(m.slotValue(m.formEnd, m.formFocus == fieldEnd))
	sb.WriteString("\n")

	return m.styles.Modal.Render(sb.String())
}

func (m Model) fieldLabel(label string, field int) string {
	style := m.styles.FieldLabel
	if m.formFocus == field {
		style = m.styles.FieldFocus
	}
	return style.Render(fmt.Sprintf("%-12s", label+":"))
}

func (m Model) slotValue(idx int, focused bool) string {
	if idx < 0 || idx >= len(m.slots) {
		return ""
	}
	if focused {
		return m.styles.FieldFocus.Render("‹ " + m.slots[idx] + " ›")
	}
	return m.slots[idx]
}

func (m Model) confirmView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.ModalTitle.Render("Cancel booking"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Cancel booking #%d? This cannot be undone.", m.confirmID))
	return m.styles.Modal.Render(sb.String())
}

func (m Model) dateView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.ModalTitle.Render("Go to date"))
	sb.WriteString("\n")
	sb.WriteString(m.dateInput.View())
	return m.styles.Modal.Render(sb.String())
}

// overlayModal centers the modal over the content when the terminal size
// is known, otherwise appends it below.
func (m Model) overlayModal(content, modal string) string {
	if m.width == 0 || m.height == 0 {
		return content + "\n" + modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen || maxLen <= 3 {
		return s
	}
	return s[:maxLen-3] + "..."
}
