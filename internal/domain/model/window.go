package model

import (
	"time"

	"github.com/google/uuid"
)

// PickupWindow is a bounded date+time range at one pickup location during
// which customers collect orders. Start and End are wall-clock values on
// Date; the timezone label is informational only.
type PickupWindow struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	Date          time.Time // calendar date, time portion unused
	Start         Clock
	End           Clock
	LocationID    uuid.UUID
	TimeZoneLabel string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StartAt combines the pickup date with the start clock in loc.
func (w PickupWindow) StartAt(loc *time.Location) time.Time {
	return time.Date(w.Date.Year(), w.Date.Month(), w.Date.Day(), w.Start.Hour, w.Start.Minute, 0, 0, loc)
}

// EndAt combines the pickup date with the end clock in loc.
func (w PickupWindow) EndAt(loc *time.Location) time.Time {
	return time.Date(w.Date.Year(), w.Date.Month(), w.Date.Day(), w.End.Hour, w.End.Minute, 0, 0, loc)
}
