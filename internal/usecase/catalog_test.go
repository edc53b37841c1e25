package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	testhelpers "github.com/ovenside/storefront/internal/test"
)

func TestCatalogUseCaseCreateLocation(t *testing.T) {
	locations := &testhelpers.LocationRepositoryStub{}
	uc := NewCatalogUseCase(&testhelpers.EventRepositoryStub{}, locations, &testhelpers.MenuItemRepositoryStub{})

	location, err := uc.CreateLocation(context.Background(), 7, "  Main St  ", "1 Main St", decimal.NewFromFloat(0.0875))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location.Name != "Main St" {
		t.Fatalf("expected trimmed name, got %q", location.Name)
	}
	if !location.TaxRate.Equal(decimal.NewFromFloat(0.0875)) {
		t.Fatalf("unexpected tax rate: %s", location.TaxRate)
	}
}

func TestCatalogUseCaseCreateLocationValidation(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.EventRepositoryStub{}, &testhelpers.LocationRepositoryStub{}, &testhelpers.MenuItemRepositoryStub{})

	_, err := uc.CreateLocation(context.Background(), 7, " ", "", decimal.NewFromInt(-1))
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validation.Fields["name"] == "" || validation.Fields["taxRate"] == "" {
		t.Fatalf("expected name and taxRate violations, got %v", validation.Fields)
	}
}

func TestCatalogUseCaseMenuLifecycle(t *testing.T) {
	event := draftEvent(7)
	events := &testhelpers.EventRepositoryStub{Events: []model.Event{event}}
	menu := &testhelpers.MenuItemRepositoryStub{}
	uc := NewCatalogUseCase(events, &testhelpers.LocationRepositoryStub{}, menu)

	item, err := uc.AddMenuItem(context.Background(), 7, event.ID, "Margherita Slice", 450, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := uc.ListMenu(context.Background(), 7, event.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Margherita Slice" {
		t.Fatalf("unexpected menu: %v", items)
	}

	if err := uc.DeleteMenuItem(context.Background(), 7, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(menu.Deleted) != 1 || menu.Deleted[0] != item.ID {
		t.Fatalf("expected deletion of %s, got %v", item.ID, menu.Deleted)
	}
}

func TestCatalogUseCaseMenuItemValidation(t *testing.T) {
	event := draftEvent(7)
	events := &testhelpers.EventRepositoryStub{Events: []model.Event{event}}
	uc := NewCatalogUseCase(events, &testhelpers.LocationRepositoryStub{}, &testhelpers.MenuItemRepositoryStub{})

	_, err := uc.AddMenuItem(context.Background(), 7, event.ID, " ", -100, true)
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validation.Fields["name"] == "" || validation.Fields["priceCents"] == "" {
		t.Fatalf("expected name and priceCents violations, got %v", validation.Fields)
	}
}

func TestCatalogUseCaseGuardsOwnership(t *testing.T) {
	event := draftEvent(7)
	events := &testhelpers.EventRepositoryStub{Events: []model.Event{event}}
	menu := &testhelpers.MenuItemRepositoryStub{Items: []model.MenuItem{{ID: uuid.New(), EventID: event.ID, Name: "Slice"}}}
	uc := NewCatalogUseCase(events, &testhelpers.LocationRepositoryStub{}, menu)

	if _, err := uc.AddMenuItem(context.Background(), 99, event.ID, "Slice", 100, true); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign event, got %v", err)
	}
	if _, err := uc.ListMenu(context.Background(), 99, event.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign event, got %v", err)
	}
	if err := uc.DeleteMenuItem(context.Background(), 99, menu.Items[0].ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign item, got %v", err)
	}
}
