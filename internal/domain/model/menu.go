package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is a single purchasable item attached to an event. Only the
// per-event item count participates in readiness; the rest is display data.
type MenuItem struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	Name       string
	PriceCents int64
	Available  bool
	CreatedAt  time.Time
}
