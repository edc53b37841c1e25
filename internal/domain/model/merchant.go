package model

import "time"

// Merchant represents a registered store owner.
type Merchant struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
