package model

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus describes the publication lifecycle of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

// WalkUpMode selects how walk-up ordering is fulfilled when enabled.
type WalkUpMode string

const (
	WalkUpModeASAP          WalkUpMode = "asap"
	WalkUpModePickupWindows WalkUpMode = "pickup-windows"
)

// TimeSlotsOption configures pickup-slot discretization for an event.
// Zero is the "anytime" sentinel: the whole window is one continuous choice.
type TimeSlotsOption int

// TimeSlotsAnytime disables discretization.
const TimeSlotsAnytime TimeSlotsOption = 0

var allowedSlotIntervals = map[int]struct{}{
	5: {}, 10: {}, 12: {}, 15: {}, 20: {}, 30: {}, 45: {}, 60: {}, 90: {}, 120: {},
}

// Valid reports whether the option is the anytime sentinel or one of the
// supported fixed intervals.
func (o TimeSlotsOption) Valid() bool {
	if o == TimeSlotsAnytime {
		return true
	}
	_, ok := allowedSlotIntervals[int(o)]
	return ok
}

// Anytime reports whether discretization is disabled.
func (o TimeSlotsOption) Anytime() bool {
	return o == TimeSlotsAnytime
}

// Event is a single sale with its own menu, pickup windows and schedule.
type Event struct {
	ID                 uuid.UUID
	MerchantID         int64
	Title              string
	Description        string
	OpenDate           time.Time // calendar date, time portion unused
	OpenTime           Clock
	ClosePolicy        ClosePolicy
	Status             EventStatus
	WalkUpOrdering     bool
	WalkUpMode         WalkUpMode
	HideOpenTime       bool
	HideFromStorefront bool
	TimeSlots          TimeSlotsOption
	CloseAt            *time.Time // denormalized effective close instant
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ReadinessReason identifies a single unmet publish precondition.
type ReadinessReason string

const (
	ReasonMissingDescription ReadinessReason = "missing_description"
	ReasonNoMenuItems        ReadinessReason = "no_menu_items"
	ReasonNoPickupWindows    ReadinessReason = "no_pickup_windows"
)
