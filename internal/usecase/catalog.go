package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/domain/repository"
)

// CatalogUseCase manages pickup locations and event menu items.
type CatalogUseCase struct {
	events    repository.EventRepository
	locations repository.LocationRepository
	menu      repository.MenuItemRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(events repository.EventRepository, locations repository.LocationRepository, menu repository.MenuItemRepository) *CatalogUseCase {
	return &CatalogUseCase{events: events, locations: locations, menu: menu}
}

// CreateLocation stores a new pickup location.
func (u *CatalogUseCase) CreateLocation(ctx context.Context, merchantID int64, name, address string, taxRate decimal.Decimal) (*model.PickupLocation, error) {
	violations := make(map[string]string)
	name = strings.TrimSpace(name)
	if name == "" {
		violations["name"] = "location name is required"
	}
	if taxRate.IsNegative() {
		violations["taxRate"] = "tax rate must not be negative"
	}
	if len(violations) > 0 {
		return nil, domainErrors.NewValidationError(violations)
	}

	location := &model.PickupLocation{
		MerchantID: merchantID,
		Name:       name,
		Address:    address,
		TaxRate:    taxRate,
	}
	return u.locations.Create(ctx, location)
}

// ListLocations returns the merchant's pickup locations.
func (u *CatalogUseCase) ListLocations(ctx context.Context, merchantID int64) ([]model.PickupLocation, error) {
	return u.locations.ListByMerchant(ctx, merchantID)
}

// AddMenuItem attaches an item to the merchant's event.
func (u *CatalogUseCase) AddMenuItem(ctx context.Context, merchantID int64, eventID uuid.UUID, name string, priceCents int64, available bool) (*model.MenuItem, error) {
	if err := u.checkEvent(ctx, merchantID, eventID); err != nil {
		return nil, err
	}

	violations := make(map[string]string)
	name = strings.TrimSpace(name)
	if name == "" {
		violations["name"] = "item name is required"
	}
	if priceCents < 0 {
		violations["priceCents"] = "price must not be negative"
	}
	if len(violations) > 0 {
		return nil, domainErrors.NewValidationError(violations)
	}

	item := &model.MenuItem{
		EventID:    eventID,
		Name:       name,
		PriceCents: priceCents,
		Available:  available,
	}
	return u.menu.Create(ctx, item)
}

// ListMenu returns the event's menu items.
func (u *CatalogUseCase) ListMenu(ctx context.Context, merchantID int64, eventID uuid.UUID) ([]model.MenuItem, error) {
	if err := u.checkEvent(ctx, merchantID, eventID); err != nil {
		return nil, err
	}
	return u.menu.ListByEvent(ctx, eventID)
}

// DeleteMenuItem removes one item from the merchant's event.
func (u *CatalogUseCase) DeleteMenuItem(ctx context.Context, merchantID int64, itemID uuid.UUID) error {
	item, err := u.menu.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := u.checkEvent(ctx, merchantID, item.EventID); err != nil {
		return err
	}
	return u.menu.Delete(ctx, itemID)
}

func (u *CatalogUseCase) checkEvent(ctx context.Context, merchantID int64, eventID uuid.UUID) error {
	event, err := u.events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.MerchantID != merchantID {
		return domainErrors.ErrNotFound
	}
	return nil
}
