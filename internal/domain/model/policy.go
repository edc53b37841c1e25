package model

import (
	"fmt"
	"time"
)

// CloseOption names the active variant of an order-close policy.
type CloseOption string

const (
	// CloseLastWindow closes ordering when the latest pickup window ends.
	CloseLastWindow CloseOption = "last-window"
	// CloseTimeBefore closes ordering a fixed offset before each window start.
	CloseTimeBefore CloseOption = "time-before"
	// CloseSpecificTime closes ordering at one absolute instant.
	CloseSpecificTime CloseOption = "specific-time"
)

// ClosePolicy is a tagged union: exactly one variant is active and only the
// fields belonging to that variant are set. Construct via CloseAtLastWindow,
// CloseBeforeEachWindow or CloseAtSpecificTime.
type ClosePolicy struct {
	option  CloseOption
	hours   int
	minutes int
	at      time.Time
}

// CloseAtLastWindow builds the last-window variant.
func CloseAtLastWindow() ClosePolicy {
	return ClosePolicy{option: CloseLastWindow}
}

// CloseBeforeEachWindow builds the time-before variant. Both components must
// be non-negative; a 0/0 offset is allowed and closes at each window start.
func CloseBeforeEachWindow(hours, minutes int) (ClosePolicy, error) {
	if hours < 0 || minutes < 0 {
		return ClosePolicy{}, fmt.Errorf("close offset must be non-negative, got %dh%dm", hours, minutes)
	}
	return ClosePolicy{option: CloseTimeBefore, hours: hours, minutes: minutes}, nil
}

// CloseAtSpecificTime builds the specific-time variant.
func CloseAtSpecificTime(at time.Time) (ClosePolicy, error) {
	if at.IsZero() {
		return ClosePolicy{}, fmt.Errorf("close time must be set")
	}
	return ClosePolicy{option: CloseSpecificTime, at: at}, nil
}

// Option returns the active variant tag.
func (p ClosePolicy) Option() CloseOption {
	return p.option
}

// Offset returns the hours/minutes of the time-before variant. Zero for
// other variants.
func (p ClosePolicy) Offset() (hours, minutes int) {
	return p.hours, p.minutes
}

// OffsetDuration returns the time-before offset as a duration.
func (p ClosePolicy) OffsetDuration() time.Duration {
	return time.Duration(p.hours)*time.Hour + time.Duration(p.minutes)*time.Minute
}

// At returns the absolute close instant of the specific-time variant.
func (p ClosePolicy) At() time.Time {
	return p.at
}

// IsZero reports whether no variant has been chosen yet.
func (p ClosePolicy) IsZero() bool {
	return p.option == ""
}
