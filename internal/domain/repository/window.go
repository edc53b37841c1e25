package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ovenside/storefront/internal/domain/model"
)

// PickupWindowRepository describes persistence operations with pickup
// windows. Windows are created, edited and deleted independently of the
// owning event's save cycle.
type PickupWindowRepository interface {
	Create(ctx context.Context, window *model.PickupWindow) (*model.PickupWindow, error)
	Update(ctx context.Context, window *model.PickupWindow) (*model.PickupWindow, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.PickupWindow, error)
	// ListByEvent returns windows ordered by pickup date then start time.
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.PickupWindow, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}
