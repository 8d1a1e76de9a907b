package booking

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"containment", "09:00", "12:00", "10:00", "11:00", true},
		{"shared start", "09:00", "10:00", "09:00", "09:30", true},
		{"adjacent after", "09:00", "10:00", "10:00", "11:00", false},
		{"adjacent before", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "08:00", "09:00", "14:00", "15:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
			// The predicate is symmetric under swapping the intervals.
			if got := Overlaps(tt.s2, tt.e2, tt.s1, tt.e1); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v (symmetry)",
					tt.s2, tt.e2, tt.s1, tt.e1, got, tt.want)
			}
		})
	}
}

func testBooking(id int64, start, end string) *Booking {
	return &Booking{
		ID:       id,
		Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		Start:    start,
		End:      end,
		BookedBy: "Alice",
	}
}

func TestFirstConflict(t *testing.T) {
	existing := []*Booking{
		testBooking(1, "09:00", "10:00"),
		testBooking(2, "11:00", "12:00"),
	}

	if c := FirstConflict("10:00", "11:00", existing); c != nil {
		t.Errorf("adjacent candidate reported conflict with #%d", c.ID)
	}
	if c := FirstConflict("09:30", "10:30", existing); c == nil || c.ID != 1 {
		t.Errorf("overlapping candidate conflict = %v, want booking #1", c)
	}
	if c := FirstConflict("11:30", "13:00", existing); c == nil || c.ID != 2 {
		t.Errorf("overlapping candidate conflict = %v, want booking #2", c)
	}
	if c := FirstConflict("08:00", "09:00", nil); c != nil {
		t.Errorf("empty store reported conflict with #%d", c.ID)
	}
}

func TestFreeSlots(t *testing.T) {
	tests := []struct {
		name     string
		existing []*Booking
		want     []Window
	}{
		{
			name:     "empty day",
			existing: nil,
			want:     []Window{{"08:00", "18:00"}},
		},
		{
			name: "single booking in the middle",
			existing: []*Booking{
				testBooking(1, "10:00", "11:00"),
			},
			want: []Window{{"08:00", "10:00"}, {"11:00", "18:00"}},
		},
		{
			name: "back to back bookings leave no gap",
			existing: []*Booking{
				testBooking(1, "09:00", "10:00"),
				testBooking(2, "10:00", "11:00"),
			},
			want: []Window{{"08:00", "09:00"}, {"11:00", "18:00"}},
		},
		{
			name: "unsorted input",
			existing: []*Booking{
				testBooking(2, "14:00", "15:00"),
				testBooking(1, "09:00", "10:00"),
			},
			want: []Window{{"08:00", "09:00"}, {"10:00", "14:00"}, {"15:00", "18:00"}},
		},
		{
			name: "booking spilling over the window edges",
			existing: []*Booking{
				testBooking(1, "07:00", "09:00"),
				testBooking(2, "17:30", "19:00"),
			},
			want: []Window{{"09:00", "17:30"}},
		},
		{
			name: "fully booked",
			existing: []*Booking{
				testBooking(1, "08:00", "18:00"),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeSlots("08:00", "18:00", tt.existing)
			if len(got) != len(tt.want) {
				t.Fatalf("FreeSlots returned %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("window %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBookingOverlapsWith(t *testing.T) {
	a := testBooking(1, "09:00", "10:00")
	b := testBooking(2, "09:30", "10:30")

	if !a.OverlapsWith(b) {
		t.Error("expected overlap on the same date")
	}

	b.Date = b.Date.AddDate(0, 0, 1)
	if a.OverlapsWith(b) {
		t.Error("bookings on different dates must never overlap")
	}

	if a.OverlapsWith(nil) {
		t.Error("nil booking must not overlap")
	}
}

func TestBookingDuration(t *testing.T) {
	if d := testBooking(1, "09:00", "10:30").Duration(); d != 90 {
		t.Errorf("Duration = %d, want 90", d)
	}
}
