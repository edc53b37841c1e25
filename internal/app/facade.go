package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
	"github.com/ovenside/storefront/internal/usecase"
)

// StorefrontFacade is the single application surface consumed by the HTTP
// handlers and the background close reconciler.
type StorefrontFacade struct {
	auth    *usecase.AuthUseCase
	events  *usecase.EventUseCase
	windows *usecase.WindowUseCase
	catalog *usecase.CatalogUseCase
}

func NewStorefrontFacade(auth *usecase.AuthUseCase, events *usecase.EventUseCase, windows *usecase.WindowUseCase, catalog *usecase.CatalogUseCase) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, events: events, windows: windows, catalog: catalog}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) CreateEvent(ctx context.Context, merchantID int64, in usecase.EventInput) (*model.Event, error) {
	return f.events.Create(ctx, merchantID, in)
}

func (f *StorefrontFacade) UpdateEvent(ctx context.Context, merchantID int64, id uuid.UUID, in usecase.EventInput) (*model.Event, error) {
	return f.events.Update(ctx, merchantID, id, in)
}

func (f *StorefrontFacade) Event(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error) {
	return f.events.Get(ctx, merchantID, id)
}

func (f *StorefrontFacade) Events(ctx context.Context, merchantID int64) ([]model.Event, error) {
	return f.events.List(ctx, merchantID)
}

func (f *StorefrontFacade) PublishEvent(ctx context.Context, merchantID int64, id uuid.UUID) (*model.Event, error) {
	return f.events.Publish(ctx, merchantID, id)
}

func (f *StorefrontFacade) EventReadiness(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Report, error) {
	return f.events.Readiness(ctx, merchantID, id)
}

func (f *StorefrontFacade) EventClose(ctx context.Context, merchantID int64, id uuid.UUID) (schedule.Resolution, error) {
	return f.events.CloseResolution(ctx, merchantID, id)
}

func (f *StorefrontFacade) AddWindow(ctx context.Context, merchantID int64, eventID uuid.UUID, in usecase.WindowInput) (*model.PickupWindow, error) {
	return f.windows.Add(ctx, merchantID, eventID, in)
}

func (f *StorefrontFacade) UpdateWindow(ctx context.Context, merchantID int64, windowID uuid.UUID, in usecase.WindowInput) (*model.PickupWindow, error) {
	return f.windows.Update(ctx, merchantID, windowID, in)
}

func (f *StorefrontFacade) DeleteWindow(ctx context.Context, merchantID int64, windowID uuid.UUID) error {
	return f.windows.Delete(ctx, merchantID, windowID)
}

func (f *StorefrontFacade) EventWindows(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.PickupWindow, error) {
	return f.windows.ListByEvent(ctx, merchantID, eventID)
}

func (f *StorefrontFacade) WindowSlots(ctx context.Context, merchantID int64, windowID uuid.UUID) ([]schedule.Slot, error) {
	return f.windows.Slots(ctx, merchantID, windowID)
}

func (f *StorefrontFacade) CreateLocation(ctx context.Context, merchantID int64, name, address string, taxRate decimal.Decimal) (*model.PickupLocation, error) {
	return f.catalog.CreateLocation(ctx, merchantID, name, address, taxRate)
}

func (f *StorefrontFacade) Locations(ctx context.Context, merchantID int64) ([]model.PickupLocation, error) {
	return f.catalog.ListLocations(ctx, merchantID)
}

func (f *StorefrontFacade) AddMenuItem(ctx context.Context, merchantID int64, eventID uuid.UUID, name string, priceCents int64, available bool) (*model.MenuItem, error) {
	return f.catalog.AddMenuItem(ctx, merchantID, eventID, name, priceCents, available)
}

func (f *StorefrontFacade) EventMenu(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.MenuItem, error) {
	return f.catalog.ListMenu(ctx, merchantID, eventID)
}

func (f *StorefrontFacade) DeleteMenuItem(ctx context.Context, merchantID int64, itemID uuid.UUID) error {
	return f.catalog.DeleteMenuItem(ctx, merchantID, itemID)
}

func (f *StorefrontFacade) StorefrontEvents(ctx context.Context) ([]model.Event, error) {
	return f.events.StorefrontList(ctx)
}

func (f *StorefrontFacade) StorefrontEvent(ctx context.Context, id uuid.UUID) (*model.Event, []model.PickupWindow, []model.MenuItem, error) {
	return f.events.StorefrontGet(ctx, id)
}

func (f *StorefrontFacade) StorefrontWindowSlots(ctx context.Context, windowID uuid.UUID) ([]schedule.Slot, error) {
	return f.windows.StorefrontSlots(ctx, windowID)
}

func (f *StorefrontFacade) EventsForReconcile(ctx context.Context, limit int) ([]model.Event, error) {
	return f.events.PublishedBatch(ctx, limit)
}

func (f *StorefrontFacade) ResolveEventClose(ctx context.Context, event *model.Event) (schedule.Resolution, error) {
	return f.events.ResolveClose(ctx, event)
}

func (f *StorefrontFacade) UpdateEventCloseAt(ctx context.Context, id uuid.UUID, closeAt time.Time) error {
	return f.events.SetCloseAt(ctx, id, closeAt)
}
