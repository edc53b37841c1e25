package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
	"github.com/ovenside/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// EventFacade encapsulates event lifecycle operations exposed via HTTP.
type EventFacade interface {
	CreateEvent(ctx context.Context, merchantID int64, in usecase.EventInput) (*model.Event, error)
	UpdateEvent(ctx context.Context, merchantID int64, id uuid.UUID, in usecase.EventInput) (*model.Event, error)
	Event(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error)
	Events(ctx context.Context, merchantID int64) ([]model.Event, error)
	PublishEvent(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error)
	EventReadiness(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Report, error)
	EventClose(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Resolution, error)
}

// WindowFacade encapsulates pickup window operations exposed via HTTP.
type WindowFacade interface {
	AddWindow(ctx context.Context, merchantID int64, eventID uuid.UUID, in usecase.WindowInput) (*model.PickupWindow, error)
	UpdateWindow(ctx context.Context, merchantID int64, windowID uuid.UUID, in usecase.WindowInput) (*model.PickupWindow, error)
	DeleteWindow(ctx context.Context, merchantID int64, windowID uuid.UUID) error
	EventWindows(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.PickupWindow, error)
	WindowSlots(ctx context.Context, merchantID int64, windowID uuid.UUID) ([]schedule.Slot, error)
}

// CatalogFacade provides location and menu operations.
type CatalogFacade interface {
	CreateLocation(ctx context.Context, merchantID int64, name, address string, taxRate decimal.Decimal) (*model.PickupLocation, error)
	Locations(ctx context.Context, merchantID int64) ([]model.PickupLocation, error)
	AddMenuItem(ctx context.Context, merchantID int64, eventID uuid.UUID, name string, priceCents int64, available bool) (*model.MenuItem, error)
	EventMenu(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, merchantID int64, itemID uuid.UUID) error
}

// StorefrontPublicFacade serves the unauthenticated storefront surface.
type StorefrontPublicFacade interface {
	StorefrontEvents(ctx context.Context) ([]model.Event, error)
	StorefrontEvent(ctx context.Context, id uuid.UUID) (*model.Event, []model.PickupWindow, []model.MenuItem, error)
	StorefrontWindowSlots(ctx context.Context, windowID uuid.UUID) ([]schedule.Slot, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	EventFacade
	WindowFacade
	CatalogFacade
	StorefrontPublicFacade
}
