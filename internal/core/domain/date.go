package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-day format. Zero-padded dates in this
// layout sort lexicographically in calendar order.
const DateLayout = "2006-01-02"

// ParseDate normalizes s to a canonical YYYY-MM-DD string. RFC 3339 timestamps
// are accepted and reduced to the calendar day they were written in.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrDateRequired
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(DateLayout), nil
	}

	return "", fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(DateLayout)
}

// AddDays shifts a canonical date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}
