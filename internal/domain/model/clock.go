package model

import (
	"fmt"
	"time"
)

// Clock is a wall-clock time of day without a date component.
type Clock struct {
	Hour   int
	Minute int
}

const clockLayout = "15:04"

// ParseClock parses a "15:04" formatted wall-clock value.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String formats the clock back to "15:04".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes elapsed since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// Compare orders two clocks within the same day: -1, 0 or 1.
func (c Clock) Compare(other Clock) int {
	switch {
	case c.Minutes() < other.Minutes():
		return -1
	case c.Minutes() > other.Minutes():
		return 1
	default:
		return 0
	}
}

const dateLayout = "2006-01-02"

// ParseDate parses a "2006-01-02" calendar date. The returned value carries
// only year, month and day; callers combine it with a Clock to obtain an
// instant in a concrete location.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders the calendar date portion of t as "2006-01-02".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
