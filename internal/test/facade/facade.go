// Package facade provides stub implementations of the HTTP facade
// contracts. It lives apart from the base stub package because these
// stubs speak usecase input types, which the usecase tests themselves
// must not import transitively.
package facade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
	"github.com/ovenside/storefront/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated merchant.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// EventFacadeStub provides controllable behaviour for event endpoints.
type EventFacadeStub struct {
	CreateFn    func(context.Context, int64, usecase.EventInput) (*model.Event, error)
	UpdateFn    func(context.Context, int64, uuid.UUID, usecase.EventInput) (*model.Event, error)
	GetFn       func(context.Context, int64, uuid.UUID) (*model.Event, error)
	ListFn      func(context.Context, int64) ([]model.Event, error)
	PublishFn   func(context.Context, int64, uuid.UUID) (*model.Event, error)
	ReadinessFn func(context.Context, int64, uuid.UUID) (schedule.Report, error)
	CloseFn     func(context.Context, int64, uuid.UUID) (schedule.Resolution, error)
}

// CreateEvent delegates to the override or returns a default draft.
func (s EventFacadeStub) CreateEvent(ctx context.Context, merchantID int64, in usecase.EventInput) (*model.Event, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, merchantID, in)
	}
	return &model.Event{ID: uuid.New(), MerchantID: merchantID, Title: in.Title, Status: model.EventStatusDraft}, nil
}

// UpdateEvent delegates to the override or echoes the input back.
func (s EventFacadeStub) UpdateEvent(ctx context.Context, merchantID int64, id uuid.UUID, in usecase.EventInput) (*model.Event, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, merchantID, id, in)
	}
	return &model.Event{ID: id, MerchantID: merchantID, Title: in.Title, Status: model.EventStatusDraft}, nil
}

// Event returns the configured event.
func (s EventFacadeStub) Event(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, merchantID, id)
	}
	return &model.Event{ID: id, MerchantID: merchantID, Status: model.EventStatusDraft}, nil
}

// Events returns the configured list.
func (s EventFacadeStub) Events(ctx context.Context, merchantID int64) ([]model.Event, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, merchantID)
	}
	return nil, nil
}

// PublishEvent delegates to the override or returns a published event.
func (s EventFacadeStub) PublishEvent(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error) {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, merchantID, id)
	}
	return &model.Event{ID: id, MerchantID: merchantID, Status: model.EventStatusPublished}, nil
}

// EventReadiness returns the configured report.
func (s EventFacadeStub) EventReadiness(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Report, error) {
	if s.ReadinessFn != nil {
		return s.ReadinessFn(ctx, merchantID, id)
	}
	return schedule.Report{Ready: true}, nil
}

// EventClose returns the configured resolution.
func (s EventFacadeStub) EventClose(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Resolution, error) {
	if s.CloseFn != nil {
		return s.CloseFn(ctx, merchantID, id)
	}
	return schedule.Resolution{}, nil
}

// WindowFacadeStub simulates pickup window operations.
type WindowFacadeStub struct {
	AddFn    func(context.Context, int64, uuid.UUID, usecase.WindowInput) (*model.PickupWindow, error)
	UpdateFn func(context.Context, int64, uuid.UUID, usecase.WindowInput) (*model.PickupWindow, error)
	DeleteFn func(context.Context, int64, uuid.UUID) error
	ListFn   func(context.Context, int64, uuid.UUID) ([]model.PickupWindow, error)
	SlotsFn  func(context.Context, int64, uuid.UUID) ([]schedule.Slot, error)
}

// AddWindow delegates to the override or returns a default window.
func (s WindowFacadeStub) AddWindow(ctx context.Context, merchantID int64, eventID uuid.UUID, in usecase.WindowInput) (*model.PickupWindow, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, merchantID, eventID, in)
	}
	return &model.PickupWindow{ID: uuid.New(), EventID: eventID}, nil
}

// UpdateWindow delegates to the override or returns a default window.
func (s WindowFacadeStub) UpdateWindow(ctx context.Context, merchantID int64, windowID uuid.UUID, in usecase.WindowInput) (*model.PickupWindow, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, merchantID, windowID, in)
	}
	return &model.PickupWindow{ID: windowID}, nil
}

// DeleteWindow executes configured removal handler.
func (s WindowFacadeStub) DeleteWindow(ctx context.Context, merchantID int64, windowID uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, merchantID, windowID)
	}
	return nil
}

// EventWindows returns the configured list.
func (s WindowFacadeStub) EventWindows(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.PickupWindow, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, merchantID, eventID)
	}
	return nil, nil
}

// WindowSlots returns the configured slots.
func (s WindowFacadeStub) WindowSlots(ctx context.Context, merchantID int64, windowID uuid.UUID) ([]schedule.Slot, error) {
	if s.SlotsFn != nil {
		return s.SlotsFn(ctx, merchantID, windowID)
	}
	return nil, nil
}

// CatalogFacadeStub simulates location and menu operations.
type CatalogFacadeStub struct {
	CreateLocationFn func(context.Context, int64, string, string, decimal.Decimal) (*model.PickupLocation, error)
	LocationsFn      func(context.Context, int64) ([]model.PickupLocation, error)
	AddMenuItemFn    func(context.Context, int64, uuid.UUID, string, int64, bool) (*model.MenuItem, error)
	EventMenuFn      func(context.Context, int64, uuid.UUID) ([]model.MenuItem, error)
	DeleteMenuItemFn func(context.Context, int64, uuid.UUID) error
}

// CreateLocation delegates to the override or returns a default location.
func (s CatalogFacadeStub) CreateLocation(ctx context.Context, merchantID int64, name, address string, taxRate decimal.Decimal) (*model.PickupLocation, error) {
	if s.CreateLocationFn != nil {
		return s.CreateLocationFn(ctx, merchantID, name, address, taxRate)
	}
	return &model.PickupLocation{ID: uuid.New(), MerchantID: merchantID, Name: name, Address: address, TaxRate: taxRate}, nil
}

// Locations returns the configured list.
func (s CatalogFacadeStub) Locations(ctx context.Context, merchantID int64) ([]model.PickupLocation, error) {
	if s.LocationsFn != nil {
		return s.LocationsFn(ctx, merchantID)
	}
	return nil, nil
}

// AddMenuItem delegates to the override or returns a default item.
func (s CatalogFacadeStub) AddMenuItem(ctx context.Context, merchantID int64, eventID uuid.UUID, name string, priceCents int64, available bool) (*model.MenuItem, error) {
	if s.AddMenuItemFn != nil {
		return s.AddMenuItemFn(ctx, merchantID, eventID, name, priceCents, available)
	}
	return &model.MenuItem{ID: uuid.New(), EventID: eventID, Name: name, PriceCents: priceCents, Available: available}, nil
}

// EventMenu returns the configured list.
func (s CatalogFacadeStub) EventMenu(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.MenuItem, error) {
	if s.EventMenuFn != nil {
		return s.EventMenuFn(ctx, merchantID, eventID)
	}
	return nil, nil
}

// DeleteMenuItem executes configured removal handler.
func (s CatalogFacadeStub) DeleteMenuItem(ctx context.Context, merchantID int64, itemID uuid.UUID) error {
	if s.DeleteMenuItemFn != nil {
		return s.DeleteMenuItemFn(ctx, merchantID, itemID)
	}
	return nil
}

// StorefrontPublicFacadeStub simulates the public storefront surface.
type StorefrontPublicFacadeStub struct {
	EventsFn func(context.Context) ([]model.Event, error)
	EventFn  func(context.Context, uuid.UUID) (*model.Event, []model.PickupWindow, []model.MenuItem, error)
	SlotsFn  func(context.Context, uuid.UUID) ([]schedule.Slot, error)
}

// StorefrontEvents returns the configured list.
func (s StorefrontPublicFacadeStub) StorefrontEvents(ctx context.Context) ([]model.Event, error) {
	if s.EventsFn != nil {
		return s.EventsFn(ctx)
	}
	return nil, nil
}

// StorefrontEvent returns the configured detail tuple.
func (s StorefrontPublicFacadeStub) StorefrontEvent(ctx context.Context, id uuid.UUID) (*model.Event, []model.PickupWindow, []model.MenuItem, error) {
	if s.EventFn != nil {
		return s.EventFn(ctx, id)
	}
	return &model.Event{ID: id, Status: model.EventStatusPublished}, nil, nil, nil
}

// StorefrontWindowSlots returns the configured slots.
func (s StorefrontPublicFacadeStub) StorefrontWindowSlots(ctx context.Context, windowID uuid.UUID) ([]schedule.Slot, error) {
	if s.SlotsFn != nil {
		return s.SlotsFn(ctx, windowID)
	}
	return nil, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	EventFacadeStub
	WindowFacadeStub
	CatalogFacadeStub
	StorefrontPublicFacadeStub
}
