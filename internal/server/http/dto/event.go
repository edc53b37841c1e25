package dto

import "time"

// ClosePolicyPayload mirrors the order-close policy over the wire. Option
// selects the variant; only the matching fields are meaningful.
type ClosePolicyPayload struct {
	Option  string `json:"option"`
	Hours   int    `json:"hours,omitempty"`
	Minutes int    `json:"minutes,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

// EventRequest describes the merchant event form payload. Dates are
// "YYYY-MM-DD", clocks "HH:MM".
type EventRequest struct {
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	PreOrderDate         string             `json:"preOrderDate"`
	PreOrderTime         string             `json:"preOrderTime"`
	OrderClosePolicy     ClosePolicyPayload `json:"orderClosePolicy"`
	TimeSlotsOption      int                `json:"timeSlotsOption"`
	WalkUpOrdering       bool               `json:"walkUpOrdering"`
	WalkUpOrderingOption string             `json:"walkUpOrderingOption"`
	HideOpenTime         bool               `json:"hideOpenTime"`
	HideFromStorefront   bool               `json:"hideFromStorefront"`
}

// EventResponse describes a stored event.
type EventResponse struct {
	ID                   string             `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	PreOrderDate         string             `json:"preOrderDate"`
	PreOrderTime         string             `json:"preOrderTime,omitempty"`
	OrderClosePolicy     ClosePolicyPayload `json:"orderClosePolicy"`
	Status               string             `json:"status"`
	TimeSlotsOption      int                `json:"timeSlotsOption"`
	WalkUpOrdering       bool               `json:"walkUpOrdering"`
	WalkUpOrderingOption string             `json:"walkUpOrderingOption,omitempty"`
	HideOpenTime         bool               `json:"hideOpenTime"`
	HideFromStorefront   bool               `json:"hideFromStorefront"`
	CloseAt              *time.Time         `json:"closeAt,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// ReadinessResponse itemizes publish-eligibility.
type ReadinessResponse struct {
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing"`
}

// CloseResponse carries the resolved order-close instant(s).
type CloseResponse struct {
	CloseAt   time.Time            `json:"closeAt"`
	PerWindow map[string]time.Time `json:"perWindow,omitempty"`
}

// ValidationResponse maps field names to violation messages.
type ValidationResponse struct {
	Errors map[string]string `json:"errors"`
}
