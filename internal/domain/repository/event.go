package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ovenside/storefront/internal/domain/model"
)

// EventRepository describes persistence operations with events.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) (*model.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]model.Event, error)
	// Publish flips status to published and stores the effective close
	// instant. Only rows still in draft match; a stale call reports
	// ErrAlreadyPublished via zero rows affected.
	Publish(ctx context.Context, id uuid.UUID, merchantID int64, closeAt *time.Time) error
	// UpdateCloseAt rewrites the denormalized close instant.
	UpdateCloseAt(ctx context.Context, id uuid.UUID, closeAt time.Time) error
	// ListPublished returns published events for reconciliation, oldest
	// update first.
	ListPublished(ctx context.Context, limit int) ([]model.Event, error)
	// ListStorefront returns published events not hidden from the
	// storefront, ordered by pre-order open date.
	ListStorefront(ctx context.Context) ([]model.Event, error)
}
