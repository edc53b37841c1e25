package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
	testhelpers "github.com/ovenside/storefront/internal/test"
)

type windowFixture struct {
	uc        *WindowUseCase
	events    *testhelpers.EventRepositoryStub
	windows   *testhelpers.WindowRepositoryStub
	locations *testhelpers.LocationRepositoryStub
	event     model.Event
	location  model.PickupLocation
}

func newWindowFixture(t *testing.T) *windowFixture {
	t.Helper()

	event := draftEvent(7)
	location := model.PickupLocation{ID: uuid.New(), MerchantID: 7, Name: "Main St"}

	events := &testhelpers.EventRepositoryStub{Events: []model.Event{event}}
	windows := &testhelpers.WindowRepositoryStub{}
	locations := &testhelpers.LocationRepositoryStub{Locations: []model.PickupLocation{location}}

	return &windowFixture{
		uc:        NewWindowUseCase(events, windows, locations, schedule.NewEngine(time.UTC)),
		events:    events,
		windows:   windows,
		locations: locations,
		event:     event,
		location:  location,
	}
}

func (f *windowFixture) input() WindowInput {
	return WindowInput{
		Date:       "2024-06-01",
		Start:      "12:00",
		End:        "15:00",
		LocationID: f.location.ID.String(),
	}
}

func TestWindowUseCaseAdd(t *testing.T) {
	f := newWindowFixture(t)

	window, err := f.uc.Add(context.Background(), 7, f.event.ID, f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window.EventID != f.event.ID {
		t.Fatalf("unexpected event id: %s", window.EventID)
	}
	if len(f.windows.Windows) != 1 {
		t.Fatalf("expected one stored window, got %d", len(f.windows.Windows))
	}
}

func TestWindowUseCaseAddRejectsInvalidInput(t *testing.T) {
	f := newWindowFixture(t)

	in := f.input()
	in.Start = "15:00"
	in.End = "12:00"

	_, err := f.uc.Add(context.Background(), 7, f.event.ID, in)
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validation.Fields["startTime"] == "" {
		t.Fatalf("expected startTime violation, got %v", validation.Fields)
	}
}

func TestWindowUseCaseAddRejectsForeignLocation(t *testing.T) {
	f := newWindowFixture(t)
	foreign := model.PickupLocation{ID: uuid.New(), MerchantID: 99}
	f.locations.Locations = append(f.locations.Locations, foreign)

	in := f.input()
	in.LocationID = foreign.ID.String()

	if _, err := f.uc.Add(context.Background(), 7, f.event.ID, in); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign location, got %v", err)
	}
}

func TestWindowUseCaseAddRejectsForeignEvent(t *testing.T) {
	f := newWindowFixture(t)

	if _, err := f.uc.Add(context.Background(), 99, f.event.ID, f.input()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign event, got %v", err)
	}
}

func TestWindowUseCaseUpdateAndDelete(t *testing.T) {
	f := newWindowFixture(t)

	window, err := f.uc.Add(context.Background(), 7, f.event.ID, f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := f.input()
	in.End = "16:30"
	updated, err := f.uc.Update(context.Background(), 7, window.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.End != (model.Clock{Hour: 16, Minute: 30}) {
		t.Fatalf("unexpected end clock: %s", updated.End)
	}

	if err := f.uc.Delete(context.Background(), 7, window.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.windows.Deleted) != 1 || f.windows.Deleted[0] != window.ID {
		t.Fatalf("expected deletion of %s, got %v", window.ID, f.windows.Deleted)
	}
}

func TestWindowUseCaseSlotsUseEventOption(t *testing.T) {
	f := newWindowFixture(t)
	f.events.Events[0].TimeSlots = model.TimeSlotsOption(60)

	window, err := f.uc.Add(context.Background(), 7, f.event.ID, f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots, err := f.uc.Slots(context.Background(), 7, window.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 hourly slots for a 12:00-15:00 window, got %d", len(slots))
	}
}

func TestWindowUseCaseStorefrontSlotsRequirePublishedEvent(t *testing.T) {
	f := newWindowFixture(t)

	window, err := f.uc.Add(context.Background(), 7, f.event.ID, f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.uc.StorefrontSlots(context.Background(), window.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected draft event windows to be invisible, got %v", err)
	}

	f.events.Events[0].Status = model.EventStatusPublished
	if _, err := f.uc.StorefrontSlots(context.Background(), window.ID); err != nil {
		t.Fatalf("unexpected error for published event: %v", err)
	}

	f.events.Events[0].HideFromStorefront = true
	if _, err := f.uc.StorefrontSlots(context.Background(), window.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected hidden event windows to be invisible, got %v", err)
	}
}
