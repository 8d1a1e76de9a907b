package booking

import "slices"

// Overlaps returns true if two half-open time ranges [start1, end1) and
// [start2, end2) share any instant.
// Two time ranges overlap if: start1 < end2 AND start2 < end1
//
// A range ending exactly when the other starts does not overlap, so
// back-to-back bookings are permitted.
func Overlaps(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// FirstConflict returns the first booking in existing whose time range
// overlaps [start, end), or nil when the slot is free. The caller is
// responsible for passing only bookings from the candidate's date.
func FirstConflict(start, end string, existing []*Booking) *Booking {
	for _, b := range existing {
		if Overlaps(start, end, b.Start, b.End) {
			return b
		}
	}
	return nil
}

// Window is a free time range [Start, End) within the operating day.
type Window struct {
	Start string
	End   string
}

// FreeSlots returns the maximal free windows between dayStart and dayEnd
// given the date's existing bookings. Bookings extending past the window
// edges are clipped; the result is ordered by start time.
func FreeSlots(dayStart, dayEnd string, existing []*Booking) []Window {
	sorted := make([]*Booking, len(existing))
	copy(sorted, existing)
	slices.SortFunc(sorted, func(a, b *Booking) int {
		return compareTimes(a.Start, b.Start)
	})

	var free []Window
	cursor := dayStart
	for _, b := range sorted {
		if b.End <= cursor || b.Start >= dayEnd {
			continue
		}
		if b.Start > cursor {
			free = append(free, Window{Start: cursor, End: b.Start})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}
	if cursor < dayEnd {
		free = append(free, Window{Start: cursor, End: dayEnd})
	}
	return free
}

func compareTimes(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
