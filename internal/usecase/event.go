package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/domain/repository"
	"github.com/ovenside/storefront/internal/schedule"
)

// EventUseCase drives the event lifecycle: draft saves, the guarded
// draft->published transition, readiness and close-time queries.
type EventUseCase struct {
	events  repository.EventRepository
	windows repository.PickupWindowRepository
	menu    repository.MenuItemRepository
	engine  *schedule.Engine
	now     func() time.Time
}

// NewEventUseCase constructs EventUseCase.
func NewEventUseCase(events repository.EventRepository, windows repository.PickupWindowRepository, menu repository.MenuItemRepository, engine *schedule.Engine) *EventUseCase {
	return &EventUseCase{events: events, windows: windows, menu: menu, engine: engine, now: time.Now}
}

// Create validates the input and stores a new draft event.
func (u *EventUseCase) Create(ctx context.Context, merchantID int64, in EventInput) (*model.Event, error) {
	fields, violations := ValidateEvent(in, u.now(), u.engine.Location())
	if len(violations) > 0 {
		return nil, domainErrors.NewValidationError(violations)
	}

	event := &model.Event{
		MerchantID:         merchantID,
		Title:              fields.Title,
		Description:        fields.Description,
		OpenDate:           fields.OpenDate,
		OpenTime:           fields.OpenTime,
		ClosePolicy:        fields.ClosePolicy,
		Status:             model.EventStatusDraft,
		WalkUpOrdering:     in.WalkUpOrdering,
		WalkUpMode:         fields.WalkUpMode,
		HideOpenTime:       in.HideOpenTime,
		HideFromStorefront: in.HideFromStorefront,
		TimeSlots:          fields.TimeSlots,
	}
	return u.events.Create(ctx, event)
}

// Update re-validates and saves an existing event. Re-saving never changes
// the status.
func (u *EventUseCase) Update(ctx context.Context, merchantID int64, id uuid.UUID, in EventInput) (*model.Event, error) {
	event, err := u.ownedEvent(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}

	fields, violations := ValidateEvent(in, u.now(), u.engine.Location())
	if len(violations) > 0 {
		return nil, domainErrors.NewValidationError(violations)
	}

	event.Title = fields.Title
	event.Description = fields.Description
	event.OpenDate = fields.OpenDate
	event.OpenTime = fields.OpenTime
	event.ClosePolicy = fields.ClosePolicy
	event.WalkUpOrdering = in.WalkUpOrdering
	event.WalkUpMode = fields.WalkUpMode
	event.HideOpenTime = in.HideOpenTime
	event.HideFromStorefront = in.HideFromStorefront
	event.TimeSlots = fields.TimeSlots

	return u.events.Update(ctx, event)
}

// Get returns a merchant's event.
func (u *EventUseCase) Get(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error) {
	return u.ownedEvent(ctx, merchantID, id)
}

// List returns all events of a merchant.
func (u *EventUseCase) List(ctx context.Context, merchantID int64) ([]model.Event, error) {
	return u.events.ListByMerchant(ctx, merchantID)
}

// Readiness reports publish-eligibility with the complete set of missing
// preconditions.
func (u *EventUseCase) Readiness(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Report, error) {
	event, err := u.ownedEvent(ctx, merchantID, id)
	if err != nil {
		return schedule.Report{}, err
	}

	windowCount, err := u.windows.CountByEvent(ctx, id)
	if err != nil {
		return schedule.Report{}, err
	}
	menuCount, err := u.menu.CountByEvent(ctx, id)
	if err != nil {
		return schedule.Report{}, err
	}

	return schedule.Readiness(*event, windowCount, menuCount), nil
}

// Publish performs the guarded draft->published transition. The readiness
// check runs locally before any persistence write; a NotReady rejection
// leaves the stored status untouched. On success the effective close
// instant is resolved and stored alongside the raw policy.
func (u *EventUseCase) Publish(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error) {
	event, err := u.ownedEvent(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if event.Status == model.EventStatusPublished {
		return nil, domainErrors.ErrAlreadyPublished
	}

	windowCount, err := u.windows.CountByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	menuCount, err := u.menu.CountByEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	report := schedule.Readiness(*event, windowCount, menuCount)
	if !report.Ready {
		return nil, &domainErrors.NotReadyError{Missing: report.Missing}
	}

	resolution, err := u.resolveClose(ctx, event)
	if err != nil {
		return nil, err
	}

	closeAt := resolution.Effective
	if err := u.events.Publish(ctx, id, merchantID, &closeAt); err != nil {
		return nil, err
	}

	event.Status = model.EventStatusPublished
	event.CloseAt = &closeAt
	return event, nil
}

// CloseResolution computes the effective close instant(s) for an event from
// its current window snapshot.
func (u *EventUseCase) CloseResolution(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Resolution, error) {
	event, err := u.ownedEvent(ctx, merchantID, id)
	if err != nil {
		return schedule.Resolution{}, err
	}
	return u.resolveClose(ctx, event)
}

func (u *EventUseCase) resolveClose(ctx context.Context, event *model.Event) (schedule.Resolution, error) {
	windows, err := u.windows.ListByEvent(ctx, event.ID)
	if err != nil {
		return schedule.Resolution{}, err
	}
	return u.engine.Resolve(event.ClosePolicy, schedule.NewWindowSet(windows...))
}

// StorefrontList returns published events visible on the public storefront.
func (u *EventUseCase) StorefrontList(ctx context.Context) ([]model.Event, error) {
	return u.events.ListStorefront(ctx)
}

// StorefrontGet returns one published, visible event with its windows and
// menu for the public detail view.
func (u *EventUseCase) StorefrontGet(ctx context.Context, id uuid.UUID) (*model.Event, []model.PickupWindow, []model.MenuItem, error) {
	event, err := u.events.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if event.Status != model.EventStatusPublished || event.HideFromStorefront {
		return nil, nil, nil, domainErrors.ErrNotFound
	}

	windows, err := u.windows.ListByEvent(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := u.menu.ListByEvent(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return event, windows, items, nil
}

// PublishedBatch returns up to limit published events, oldest update first,
// for background close reconciliation.
func (u *EventUseCase) PublishedBatch(ctx context.Context, limit int) ([]model.Event, error) {
	return u.events.ListPublished(ctx, limit)
}

// ResolveClose recomputes the close resolution for an event's current window
// snapshot.
func (u *EventUseCase) ResolveClose(ctx context.Context, event *model.Event) (schedule.Resolution, error) {
	return u.resolveClose(ctx, event)
}

// SetCloseAt persists a recomputed effective close instant.
func (u *EventUseCase) SetCloseAt(ctx context.Context, id uuid.UUID, closeAt time.Time) error {
	return u.events.UpdateCloseAt(ctx, id, closeAt)
}

func (u *EventUseCase) ownedEvent(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error) {
	event, err := u.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.MerchantID != merchantID {
		return nil, domainErrors.ErrNotFound
	}
	return event, nil
}
