package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationRequest describes the pickup location form payload.
type LocationRequest struct {
	Name    string          `json:"name"`
	Address string          `json:"address"`
	TaxRate decimal.Decimal `json:"taxRate"`
}

// LocationResponse describes a stored pickup location.
type LocationResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MenuItemRequest describes the menu item form payload.
type MenuItemRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Available  *bool  `json:"available"`
}

// MenuItemResponse describes a stored menu item.
type MenuItemResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"eventId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Available  bool   `json:"available"`
}
