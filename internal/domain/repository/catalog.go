package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ovenside/storefront/internal/domain/model"
)

// LocationRepository provides access to pickup locations.
type LocationRepository interface {
	Create(ctx context.Context, location *model.PickupLocation) (*model.PickupLocation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PickupLocation, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]model.PickupLocation, error)
}

// MenuItemRepository provides access to event menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.MenuItem, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}
