package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/config"
	"github.com/ndri/hallbook/internal/dateutil"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeForm         // booking form modal
	ModeConfirm      // cancel confirmation modal
	ModeDate         // date jump prompt
)

// Form field indices.
const (
	fieldWho = iota
	fieldDesc
	fieldStart
	fieldEnd
	fieldCount
)

const statusTimeout = 3 * time.Second

// Model is the day-view TUI model.
type Model struct {
	service *booking.Service
	config  *config.Config
	styles  *Styles

	date     time.Time
	bookings []*booking.Booking
	free     []booking.Window
	cursor   int
	mode     Mode
	loading  bool

	// Booking form
	slots     []string // half-hour grid in display form
	formWho   textinput.Model
	formDesc  textinput.Model
	formStart int // index into slots
	formEnd   int // index into slots
	formFocus int

	// Cancel confirmation
	confirmID int64

	// Date jump
	dateInput textinput.Model

	status  string
	errText string
	width   int
	height  int
}

// New creates the day-view model for today.
func New(svc *booking.Service, cfg *config.Config) Model {
	theme := LoadTheme(cfg.UI.Theme)

	who := textinput.New()
	who.Placeholder = "who is booking"
	who.CharLimit = 60

	desc := textinput.New()
	desc.Placeholder = "optional description"
	desc.CharLimit = 120

	dateIn := textinput.New()
	dateIn.Placeholder = "YYYY-MM-DD"
	dateIn.CharLimit = 10

	return Model{
		service:   svc,
		config:    cfg,
		styles:    NewStyles(theme),
		date:      dateutil.TruncateToDay(time.Now()),
		slots:     booking.SlotTimes(cfg.Hall.DayStart, cfg.Hall.DayEnd),
		formWho:   who,
		formDesc:  desc,
		dateInput: dateIn,
		loading:   true,
	}
}

// Init loads today's schedule.
func (m Model) Init() tea.Cmd {
	return m.loadCurrentDay()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case dayLoadedMsg:
		m.loading = false
		m.date = msg.date
		m.bookings = msg.bookings
		m.free = msg.free
		if m.cursor >= len(m.bookings) {
			m.cursor = max(0, len(m.bookings)-1)
		}
		return m, nil

	case bookedMsg:
		m.mode = ModeNormal
		m.setStatus(fmt.Sprintf("Booked #%d", msg.b.ID))
		return m, tea.Batch(m.loadCurrentDay(), clearStatusAfter(statusTimeout))

	case cancelledMsg:
		m.mode = ModeNormal
		m.setStatus(fmt.Sprintf("Cancelled #%d", msg.id))
		return m, tea.Batch(m.loadCurrentDay(), clearStatusAfter(statusTimeout))

	case reportWrittenMsg:
		m.setStatus("Report written to " + msg.path)
		return m, clearStatusAfter(statusTimeout)

	case copiedMsg:
		m.setStatus("Copied day to clipboard")
		return m, clearStatusAfter(statusTimeout)

	case errMsg:
		m.loading = false
		m.errText = msg.err.Error()
		return m, clearStatusAfter(statusTimeout)

	case clearStatusMsg:
		m.status = ""
		m.errText = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.errText = ""
}

func (m Model) loadCurrentDay() tea.Cmd {
	return loadDay(m.service, m.date, m.config.Hall.DayStart, m.config.Hall.DayEnd)
}

// selectedBooking returns the booking under the cursor, or nil.
func (m Model) selectedBooking() *booking.Booking {
	if m.cursor < 0 || m.cursor >= len(m.bookings) {
		return nil
	}
	return m.bookings[m.cursor]
}

// openForm resets and shows the booking form. The end slot defaults to
// one half hour after the start so the shortest valid booking is
// preselected.
func (m *Model) openForm() {
	m.formWho.Reset()
	m.formDesc.Reset()
	m.formStart = 0
	m.formEnd = 1
	if m.formEnd >= len(m.slots) {
		m.formEnd = len(m.slots) - 1
	}
	m.formFocus = fieldWho
	m.formWho.Focus()
	m.formDesc.Blur()
	m.mode = ModeForm
}
