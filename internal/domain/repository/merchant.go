package repository

import (
	"context"

	"github.com/ovenside/storefront/internal/domain/model"
)

// MerchantRepository describes persistence operations for merchant accounts.
type MerchantRepository interface {
	Create(ctx context.Context, login, passwordHash string) (*model.Merchant, error)
	GetByLogin(ctx context.Context, login string) (*model.Merchant, error)
	GetByID(ctx context.Context, id int64) (*model.Merchant, error)
}
