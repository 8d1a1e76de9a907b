package booking

import (
	"fmt"
	"strings"
)

// NormalizeTime converts a 12-hour clock string like "9:30 AM" to the
// canonical zero-padded 24-hour "HH:MM" form. Lexicographic order on the
// result equals chronological order within a day, which is what every
// comparison in the system relies on.
//
// The hour may omit its leading zero and the AM/PM suffix is
// case-insensitive. Anything else ("13:00 AM", "9:61 AM", "noon", a bare
// "09:00") returns ErrInvalidTimeFormat rather than a silently wrong value.
func NormalizeTime(s string) (string, error) {
	clock, suffix, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	var pm bool
	switch strings.ToUpper(strings.TrimSpace(suffix)) {
	case "AM":
		pm = false
	case "PM":
		pm = true
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hourStr, minStr, ok := strings.Cut(clock, ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := parseClockPart(hourStr, 1, 2)
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	min, err := parseClockPart(minStr, 2, 2)
	if err != nil || min > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour %= 12
	if pm {
		hour += 12
	}

	return fmt.Sprintf("%02d:%02d", hour, min), nil
}

// RenderTime converts a canonical "HH:MM" value back to its 12-hour
// display form, e.g. "18:00" -> "6:00 PM". It is the inverse of
// NormalizeTime: NormalizeTime(RenderTime(c)) == c for every valid c.
func RenderTime(canonical string) (string, error) {
	if err := ValidateCanonical(canonical); err != nil {
		return "", err
	}

	hour := int(canonical[0]-'0')*10 + int(canonical[1]-'0')
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%s %s", hour, canonical[3:5], suffix), nil
}

// ValidateCanonical checks that a string is a well-formed canonical
// "HH:MM" value with 00 <= HH <= 23 and 00 <= MM <= 59.
func ValidateCanonical(t string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q is not canonical HH:MM", ErrInvalidTimeFormat, t)
	}
	hour, err1 := parseClockPart(t[0:2], 2, 2)
	min, err2 := parseClockPart(t[3:5], 2, 2)
	if err1 != nil || err2 != nil || hour > 23 || min > 59 {
		return fmt.Errorf("%w: %q is not canonical HH:MM", ErrInvalidTimeFormat, t)
	}
	return nil
}

// SlotTimes returns the half-hour selection grid between dayStart and
// dayEnd (canonical "HH:MM", inclusive on both ends) in display form.
// The booking form offers these as the only choices for start and end.
func SlotTimes(dayStart, dayEnd string) []string {
	start := timeToMinutes(dayStart)
	end := timeToMinutes(dayEnd)

	var times []string
	for m := start; m <= end; m += 30 {
		display, err := RenderTime(fmt.Sprintf("%02d:%02d", m/60, m%60))
		if err != nil {
			continue
		}
		times = append(times, display)
	}
	return times
}

func parseClockPart(s string, minLen, maxLen int) (int, error) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, ErrInvalidTimeFormat
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, ErrInvalidTimeFormat
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
