package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ovenside/storefront/internal/domain/model"
)

const (
	maxTitleLen       = 150
	maxDescriptionLen = 500
)

// EventInput carries raw event fields as submitted by the merchant form.
// Dates are "2006-01-02", clocks "15:04"; parse failures become field-level
// violations rather than transport errors.
type EventInput struct {
	Title              string
	Description        string
	OpenDate           string
	OpenTime           string
	CloseOption        string
	CloseHours         int
	CloseMinutes       int
	CloseDate          string
	CloseTime          string
	TimeSlotMinutes    int
	WalkUpOrdering     bool
	WalkUpMode         string
	HideOpenTime       bool
	HideFromStorefront bool
}

// EventFields holds the parsed portion of a valid EventInput.
type EventFields struct {
	Title       string
	Description string
	OpenDate    time.Time
	OpenTime    model.Clock
	ClosePolicy model.ClosePolicy
	TimeSlots   model.TimeSlotsOption
	WalkUpMode  model.WalkUpMode
}

// ValidateEvent checks every field rule and reports all violations together
// as a field->message map. An empty map means in parses into the returned
// fields.
func ValidateEvent(in EventInput, now time.Time, loc *time.Location) (EventFields, map[string]string) {
	violations := make(map[string]string)
	var fields EventFields

	fields.Title = strings.TrimSpace(in.Title)
	if fields.Title == "" {
		violations["title"] = "title is required"
	} else if len([]rune(fields.Title)) > maxTitleLen {
		violations["title"] = "title must be at most 150 characters"
	}

	fields.Description = in.Description
	if len([]rune(in.Description)) > maxDescriptionLen {
		violations["description"] = "description must be at most 500 characters"
	}

	if in.OpenDate == "" {
		violations["preOrderDate"] = "pre-order open date is required"
	} else if date, err := model.ParseDate(in.OpenDate); err != nil {
		violations["preOrderDate"] = "pre-order open date must be formatted as YYYY-MM-DD"
	} else {
		fields.OpenDate = date
		today := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)
		open := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
		if open.Before(today) {
			violations["preOrderDate"] = "pre-order open date must not be in the past"
		}
	}

	if in.OpenTime == "" {
		violations["preOrderTime"] = "pre-order open time is required"
	} else if clock, err := model.ParseClock(in.OpenTime); err != nil {
		violations["preOrderTime"] = "pre-order open time must be formatted as HH:MM"
	} else {
		fields.OpenTime = clock
	}

	fields.ClosePolicy = validateClosePolicy(in, loc, violations)

	fields.TimeSlots = model.TimeSlotsOption(in.TimeSlotMinutes)
	if !fields.TimeSlots.Valid() {
		violations["timeSlotsOption"] = "unsupported time slot interval"
	}

	fields.WalkUpMode = model.WalkUpMode(in.WalkUpMode)
	if in.WalkUpOrdering {
		if in.WalkUpMode == "" {
			fields.WalkUpMode = model.WalkUpModeASAP
		} else if fields.WalkUpMode != model.WalkUpModeASAP && fields.WalkUpMode != model.WalkUpModePickupWindows {
			violations["walkUpOrderingOption"] = "walk-up ordering mode must be asap or pickup-windows"
		}
	}

	return fields, violations
}

func validateClosePolicy(in EventInput, loc *time.Location, violations map[string]string) model.ClosePolicy {
	switch model.CloseOption(in.CloseOption) {
	case model.CloseLastWindow:
		return model.CloseAtLastWindow()

	case model.CloseTimeBefore:
		policy, err := model.CloseBeforeEachWindow(in.CloseHours, in.CloseMinutes)
		if err != nil {
			violations["orderClosePolicy"] = "close offset must be non-negative"
		}
		return policy

	case model.CloseSpecificTime:
		if in.CloseDate == "" || in.CloseTime == "" {
			violations["orderClosePolicy"] = "close date and time are required for a specific close time"
			return model.ClosePolicy{}
		}
		date, dateErr := model.ParseDate(in.CloseDate)
		clock, clockErr := model.ParseClock(in.CloseTime)
		if dateErr != nil || clockErr != nil {
			violations["orderClosePolicy"] = "close date and time must be formatted as YYYY-MM-DD and HH:MM"
			return model.ClosePolicy{}
		}
		at := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour, clock.Minute, 0, 0, loc)
		policy, err := model.CloseAtSpecificTime(at)
		if err != nil {
			violations["orderClosePolicy"] = "close time must be set"
		}
		return policy

	default:
		violations["orderClosePolicy"] = "order close policy must be last-window, time-before or specific-time"
		return model.ClosePolicy{}
	}
}

// WindowInput carries raw pickup window fields.
type WindowInput struct {
	Date          string
	Start         string
	End           string
	LocationID    string
	TimeZoneLabel string
}

// WindowFields holds the parsed portion of a valid WindowInput.
type WindowFields struct {
	Date       time.Time
	Start      model.Clock
	End        model.Clock
	LocationID uuid.UUID
}

// ValidateWindow checks every pickup window rule, reporting all violations
// together. Start must be strictly before end.
func ValidateWindow(in WindowInput) (WindowFields, map[string]string) {
	violations := make(map[string]string)
	var fields WindowFields

	if in.Date == "" {
		violations["pickupDate"] = "pickup date is required"
	} else if date, err := model.ParseDate(in.Date); err != nil {
		violations["pickupDate"] = "pickup date must be formatted as YYYY-MM-DD"
	} else {
		fields.Date = date
	}

	startOK, endOK := false, false

	if in.Start == "" {
		violations["startTime"] = "start time is required"
	} else if clock, err := model.ParseClock(in.Start); err != nil {
		violations["startTime"] = "start time must be formatted as HH:MM"
	} else {
		fields.Start = clock
		startOK = true
	}

	if in.End == "" {
		violations["endTime"] = "end time is required"
	} else if clock, err := model.ParseClock(in.End); err != nil {
		violations["endTime"] = "end time must be formatted as HH:MM"
	} else {
		fields.End = clock
		endOK = true
	}

	if startOK && endOK && !fields.Start.Before(fields.End) {
		violations["startTime"] = "start time must be before end time"
	}

	if in.LocationID == "" {
		violations["pickupLocationId"] = "pickup location is required"
	} else if id, err := uuid.Parse(in.LocationID); err != nil {
		violations["pickupLocationId"] = "pickup location id is malformed"
	} else {
		fields.LocationID = id
	}

	return fields, violations
}
