package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/report"
)

// dayLoadedMsg is sent when a day's bookings and free windows are loaded.
type dayLoadedMsg struct {
	date     time.Time
	bookings []*booking.Booking
	free     []booking.Window
}

// bookedMsg is sent when a booking was committed.
type bookedMsg struct {
	b *booking.Booking
}

// cancelledMsg is sent when a booking was cancelled.
type cancelledMsg struct {
	id int64
}

// reportWrittenMsg is sent when the report file was exported.
type reportWrittenMsg struct {
	path  string
	count int
}

// copiedMsg is sent when the day's report lines were copied to the clipboard.
type copiedMsg struct {
	count int
}

// errMsg is sent when an operation fails.
type errMsg struct {
	err error
}

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

func loadDay(svc *booking.Service, date time.Time, dayStart, dayEnd string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		bookings, err := svc.Schedule(ctx, date)
		if err != nil {
			return errMsg{err}
		}
		free, err := svc.Availability(ctx, date, dayStart, dayEnd)
		if err != nil {
			return errMsg{err}
		}
		return dayLoadedMsg{date: date, bookings: bookings, free: free}
	}
}

func createBooking(svc *booking.Service, date time.Time, start, end, bookedBy, description string) tea.Cmd {
	return func() tea.Msg {
		b, err := svc.Create(context.Background(), date.Format("2006-01-02"), start, end, bookedBy, description)
		if err != nil {
			return errMsg{err}
		}
		return bookedMsg{b}
	}
}

func cancelBooking(svc *booking.Service, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Cancel(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return cancelledMsg{id}
	}
}

func writeReport(svc *booking.Service, path string) tea.Cmd {
	return func() tea.Msg {
		bookings, err := svc.AllBookings(context.Background())
		if err != nil {
			return errMsg{err}
		}
		if err := report.Export(path, bookings); err != nil {
			return errMsg{err}
		}
		return reportWrittenMsg{path: path, count: len(bookings)}
	}
}

func copyDay(bookings []*booking.Booking) tea.Cmd {
	return func() tea.Msg {
		var sb strings.Builder
		if err := report.Write(&sb, bookings); err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(sb.String()); err != nil {
			return errMsg{err}
		}
		return copiedMsg{count: len(bookings)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
