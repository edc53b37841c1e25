package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/domain/repository"
	"github.com/ovenside/storefront/internal/schedule"
)

// WindowUseCase manages pickup windows. Windows live on their own save
// cycle, independent of the owning event's drafts.
type WindowUseCase struct {
	events    repository.EventRepository
	windows   repository.PickupWindowRepository
	locations repository.LocationRepository
	engine    *schedule.Engine
}

// NewWindowUseCase constructs WindowUseCase.
func NewWindowUseCase(events repository.EventRepository, windows repository.PickupWindowRepository, locations repository.LocationRepository, engine *schedule.Engine) *WindowUseCase {
	return &WindowUseCase{events: events, windows: windows, locations: locations, engine: engine}
}

// Add validates and stores a new window for the merchant's event.
func (u *WindowUseCase) Add(ctx context.Context, merchantID int64, eventID uuid.UUID, in WindowInput) (*model.PickupWindow, error) {
	if _, err := u.ownedEvent(ctx, merchantID, eventID); err != nil {
		return nil, err
	}

	fields, violations := ValidateWindow(in)
	if len(violations) > 0 {
		return nil, domainErrors.NewValidationError(violations)
	}

	if err := u.checkLocation(ctx, merchantID, fields.LocationID); err != nil {
		return nil, err
	}

	window := &model.PickupWindow{
		EventID:       eventID,
		Date:          fields.Date,
		Start:         fields.Start,
		End:           fields.End,
		LocationID:    fields.LocationID,
		TimeZoneLabel: in.TimeZoneLabel,
	}
	return u.windows.Create(ctx, window)
}

// Update re-validates and saves an existing window.
func (u *WindowUseCase) Update(ctx context.Context, merchantID int64, windowID uuid.UUID, in WindowInput) (*model.PickupWindow, error) {
	window, _, err := u.ownedWindow(ctx, merchantID, windowID)
	if err != nil {
		return nil, err
	}

	fields, violations := ValidateWindow(in)
	if len(violations) > 0 {
		return nil, domainErrors.NewValidationError(violations)
	}

	if err := u.checkLocation(ctx, merchantID, fields.LocationID); err != nil {
		return nil, err
	}

	window.Date = fields.Date
	window.Start = fields.Start
	window.End = fields.End
	window.LocationID = fields.LocationID
	window.TimeZoneLabel = in.TimeZoneLabel

	return u.windows.Update(ctx, window)
}

// Delete removes a window.
func (u *WindowUseCase) Delete(ctx context.Context, merchantID int64, windowID uuid.UUID) error {
	if _, _, err := u.ownedWindow(ctx, merchantID, windowID); err != nil {
		return err
	}
	return u.windows.Delete(ctx, windowID)
}

// ListByEvent returns the event's windows ordered by date then start time.
func (u *WindowUseCase) ListByEvent(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.PickupWindow, error) {
	if _, err := u.ownedEvent(ctx, merchantID, eventID); err != nil {
		return nil, err
	}
	return u.windows.ListByEvent(ctx, eventID)
}

// Slots discretizes one window using the owning event's time-slots option.
func (u *WindowUseCase) Slots(ctx context.Context, merchantID int64, windowID uuid.UUID) ([]schedule.Slot, error) {
	window, event, err := u.ownedWindow(ctx, merchantID, windowID)
	if err != nil {
		return nil, err
	}
	return u.engine.Slots(*window, event.TimeSlots)
}

// StorefrontSlots discretizes a window for the public storefront. The
// owning event must be published and visible.
func (u *WindowUseCase) StorefrontSlots(ctx context.Context, windowID uuid.UUID) ([]schedule.Slot, error) {
	window, err := u.windows.GetByID(ctx, windowID)
	if err != nil {
		return nil, err
	}
	event, err := u.events.GetByID(ctx, window.EventID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventStatusPublished || event.HideFromStorefront {
		return nil, domainErrors.ErrNotFound
	}
	return u.engine.Slots(*window, event.TimeSlots)
}

func (u *WindowUseCase) ownedEvent(ctx context.Context, merchantID int64, eventID uuid.UUID) (*model.Event, error) {
	event, err := u.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.MerchantID != merchantID {
		return nil, domainErrors.ErrNotFound
	}
	return event, nil
}

func (u *WindowUseCase) ownedWindow(ctx context.Context, merchantID int64, windowID uuid.UUID) (*model.PickupWindow, *model.Event, error) {
	window, err := u.windows.GetByID(ctx, windowID)
	if err != nil {
		return nil, nil, err
	}
	event, err := u.ownedEvent(ctx, merchantID, window.EventID)
	if err != nil {
		return nil, nil, err
	}
	return window, event, nil
}

func (u *WindowUseCase) checkLocation(ctx context.Context, merchantID int64, locationID uuid.UUID) error {
	location, err := u.locations.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if location.MerchantID != merchantID {
		return domainErrors.ErrNotFound
	}
	return nil
}
