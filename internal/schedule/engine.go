package schedule

import (
	"time"

	"github.com/ovenside/storefront/internal/domain/model"
)

// Engine evaluates fulfillment scheduling rules for one store. All
// arithmetic happens in a single fixed-offset location; per-window timezone
// labels are never used for conversion. Methods are pure over their inputs.
type Engine struct {
	loc *time.Location
}

// NewEngine creates an engine operating in loc. A nil location means UTC.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

// Location returns the store's fixed-offset location.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// At combines a calendar date with a wall-clock value into an instant.
func (e *Engine) At(date time.Time, c model.Clock) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, e.loc)
}
