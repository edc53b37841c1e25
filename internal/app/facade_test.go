package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
	testhelpers "github.com/ovenside/storefront/internal/test"
	"github.com/ovenside/storefront/internal/usecase"
)

type facadeFixture struct {
	facade    *StorefrontFacade
	merchants *testhelpers.MerchantRepositoryStub
	events    *testhelpers.EventRepositoryStub
	windows   *testhelpers.WindowRepositoryStub
	locations *testhelpers.LocationRepositoryStub
	menu      *testhelpers.MenuItemRepositoryStub
}

func newFacadeFixture() *facadeFixture {
	merchants := testhelpers.NewMerchantRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(merchants, testhelpers.HasherStub{}, strategy)

	events := &testhelpers.EventRepositoryStub{}
	windows := &testhelpers.WindowRepositoryStub{}
	locations := &testhelpers.LocationRepositoryStub{}
	menu := &testhelpers.MenuItemRepositoryStub{}
	engine := schedule.NewEngine(time.UTC)

	eventUC := usecase.NewEventUseCase(events, windows, menu, engine)
	windowUC := usecase.NewWindowUseCase(events, windows, locations, engine)
	catalogUC := usecase.NewCatalogUseCase(events, locations, menu)

	return &facadeFixture{
		facade:    NewStorefrontFacade(authUC, eventUC, windowUC, catalogUC),
		merchants: merchants,
		events:    events,
		windows:   windows,
		locations: locations,
		menu:      menu,
	}
}

func validEventInput() usecase.EventInput {
	return usecase.EventInput{
		Title:       "Summer Fest",
		Description: "Seasonal pre-orders",
		OpenDate:    "2030-06-01",
		OpenTime:    "09:00",
		CloseOption: "last-window",
	}
}

func TestStorefrontFacadeAuth(t *testing.T) {
	f := newFacadeFixture()

	token, err := f.facade.Register(context.Background(), "bakery", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := f.merchants.GetByLogin(context.Background(), "bakery")
	if err != nil {
		t.Fatalf("merchant not stored: %v", err)
	}
	if stored.Login != "bakery" {
		t.Fatalf("unexpected stored login %q", stored.Login)
	}

	token, err = f.facade.Authenticate(context.Background(), "bakery", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
}

func TestStorefrontFacadeEventLifecycle(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	event, err := f.facade.CreateEvent(ctx, 7, validEventInput())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if event.Status != model.EventStatusDraft {
		t.Fatalf("expected draft, got %s", event.Status)
	}

	in := validEventInput()
	in.Title = "Renamed"
	if _, err := f.facade.UpdateEvent(ctx, 7, event.ID, in); err != nil {
		t.Fatalf("update returned error: %v", err)
	}

	got, err := f.facade.Event(ctx, 7, event.ID)
	if err != nil || got.Title != "Renamed" {
		t.Fatalf("unexpected event: %+v err=%v", got, err)
	}

	listed, err := f.facade.Events(ctx, 7)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one event, got %v err=%v", listed, err)
	}

	report, err := f.facade.EventReadiness(ctx, 7, event.ID)
	if err != nil {
		t.Fatalf("readiness returned error: %v", err)
	}
	if report.Ready {
		t.Fatal("expected not ready without windows and menu")
	}

	var notReady *domainErrors.NotReadyError
	if _, err := f.facade.PublishEvent(ctx, 7, event.ID); !errors.As(err, &notReady) {
		t.Fatalf("expected not-ready error, got %v", err)
	}

	location, err := f.facade.CreateLocation(ctx, 7, "Main Kitchen", "1 Baker St", decimal.NewFromFloat(0.08))
	if err != nil {
		t.Fatalf("create location returned error: %v", err)
	}
	if _, err := f.facade.AddWindow(ctx, 7, event.ID, usecase.WindowInput{
		Date:       "2030-06-01",
		Start:      "12:00",
		End:        "15:00",
		LocationID: location.ID.String(),
	}); err != nil {
		t.Fatalf("add window returned error: %v", err)
	}
	if _, err := f.facade.AddMenuItem(ctx, 7, event.ID, "Slice", 450, true); err != nil {
		t.Fatalf("add menu item returned error: %v", err)
	}

	published, err := f.facade.PublishEvent(ctx, 7, event.ID)
	if err != nil {
		t.Fatalf("publish returned error: %v", err)
	}
	if published.Status != model.EventStatusPublished {
		t.Fatalf("expected published, got %s", published.Status)
	}
	wantClose := time.Date(2030, time.June, 1, 15, 0, 0, 0, time.UTC)
	if published.CloseAt == nil || !published.CloseAt.Equal(wantClose) {
		t.Fatalf("expected close at %v, got %v", wantClose, published.CloseAt)
	}

	resolution, err := f.facade.EventClose(ctx, 7, event.ID)
	if err != nil {
		t.Fatalf("close returned error: %v", err)
	}
	if !resolution.Effective.Equal(wantClose) {
		t.Fatalf("expected effective close %v, got %v", wantClose, resolution.Effective)
	}
}

func TestStorefrontFacadeWindows(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	event, err := f.facade.CreateEvent(ctx, 7, validEventInput())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	location, err := f.facade.CreateLocation(ctx, 7, "Main Kitchen", "", decimal.Zero)
	if err != nil {
		t.Fatalf("create location returned error: %v", err)
	}

	window, err := f.facade.AddWindow(ctx, 7, event.ID, usecase.WindowInput{
		Date:       "2030-06-01",
		Start:      "12:00",
		End:        "15:00",
		LocationID: location.ID.String(),
	})
	if err != nil {
		t.Fatalf("add window returned error: %v", err)
	}

	windows, err := f.facade.EventWindows(ctx, 7, event.ID)
	if err != nil || len(windows) != 1 {
		t.Fatalf("expected one window, got %v err=%v", windows, err)
	}

	slots, err := f.facade.WindowSlots(ctx, 7, window.ID)
	if err != nil {
		t.Fatalf("slots returned error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected single anytime slot, got %d", len(slots))
	}

	in := usecase.WindowInput{
		Date:       "2030-06-02",
		Start:      "10:00",
		End:        "12:00",
		LocationID: location.ID.String(),
	}
	if _, err := f.facade.UpdateWindow(ctx, 7, window.ID, in); err != nil {
		t.Fatalf("update window returned error: %v", err)
	}

	if err := f.facade.DeleteWindow(ctx, 7, window.ID); err != nil {
		t.Fatalf("delete window returned error: %v", err)
	}
	if len(f.windows.Deleted) != 1 {
		t.Fatalf("expected recorded deletion, got %v", f.windows.Deleted)
	}
}

func TestStorefrontFacadeCatalog(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	event, err := f.facade.CreateEvent(ctx, 7, validEventInput())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := f.facade.CreateLocation(ctx, 7, "Main Kitchen", "1 Baker St", decimal.NewFromFloat(0.08)); err != nil {
		t.Fatalf("create location returned error: %v", err)
	}
	locations, err := f.facade.Locations(ctx, 7)
	if err != nil || len(locations) != 1 {
		t.Fatalf("expected one location, got %v err=%v", locations, err)
	}

	item, err := f.facade.AddMenuItem(ctx, 7, event.ID, "Slice", 450, true)
	if err != nil {
		t.Fatalf("add menu item returned error: %v", err)
	}
	menu, err := f.facade.EventMenu(ctx, 7, event.ID)
	if err != nil || len(menu) != 1 {
		t.Fatalf("expected one item, got %v err=%v", menu, err)
	}
	if err := f.facade.DeleteMenuItem(ctx, 7, item.ID); err != nil {
		t.Fatalf("delete menu item returned error: %v", err)
	}
}

func TestStorefrontFacadePublicSurface(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	eventID := uuid.New()
	f.events.Events = []model.Event{{
		ID:          eventID,
		MerchantID:  7,
		Title:       "Summer Fest",
		OpenDate:    time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
		OpenTime:    model.Clock{Hour: 9},
		ClosePolicy: model.CloseAtLastWindow(),
		Status:      model.EventStatusPublished,
	}}
	f.windows.Windows = []model.PickupWindow{{
		ID:      uuid.New(),
		EventID: eventID,
		Date:    time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
		Start:   model.Clock{Hour: 12},
		End:     model.Clock{Hour: 15},
	}}
	f.menu.Items = []model.MenuItem{{ID: uuid.New(), EventID: eventID, Name: "Slice"}}

	listed, err := f.facade.StorefrontEvents(ctx)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one public event, got %v err=%v", listed, err)
	}

	event, windows, menu, err := f.facade.StorefrontEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("storefront event returned error: %v", err)
	}
	if event.ID != eventID || len(windows) != 1 || len(menu) != 1 {
		t.Fatalf("unexpected detail: event=%+v windows=%d menu=%d", event, len(windows), len(menu))
	}

	slots, err := f.facade.StorefrontWindowSlots(ctx, f.windows.Windows[0].ID)
	if err != nil || len(slots) != 1 {
		t.Fatalf("unexpected slots: %v err=%v", slots, err)
	}

	batch, err := f.facade.EventsForReconcile(ctx, 10)
	if err != nil || len(batch) != 1 {
		t.Fatalf("expected one published event, got %v err=%v", batch, err)
	}

	resolution, err := f.facade.ResolveEventClose(ctx, &batch[0])
	if err != nil {
		t.Fatalf("resolve close returned error: %v", err)
	}
	want := time.Date(2030, time.June, 1, 15, 0, 0, 0, time.UTC)
	if !resolution.Effective.Equal(want) {
		t.Fatalf("expected close %v, got %v", want, resolution.Effective)
	}

	if err := f.facade.UpdateEventCloseAt(ctx, eventID, want); err != nil {
		t.Fatalf("update close returned error: %v", err)
	}
	if got := f.events.CloseUpdates[eventID]; !got.Equal(want) {
		t.Fatalf("expected recorded close %v, got %v", want, got)
	}
}
