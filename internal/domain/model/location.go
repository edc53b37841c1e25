package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PickupLocation is a physical place pickup windows are bound to.
// Attributes are read-only to the scheduling engine.
type PickupLocation struct {
	ID         uuid.UUID
	MerchantID int64
	Name       string
	Address    string
	TaxRate    decimal.Decimal
	CreatedAt  time.Time
}
