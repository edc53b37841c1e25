package dto

import "time"

// WindowRequest describes the pickup window form payload.
type WindowRequest struct {
	PickupDate       string `json:"pickupDate"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	PickupLocationID string `json:"pickupLocationId"`
	TimeZoneLabel    string `json:"timeZoneLabel"`
}

// WindowResponse describes a stored pickup window.
type WindowResponse struct {
	ID               string    `json:"id"`
	EventID          string    `json:"eventId"`
	PickupDate       string    `json:"pickupDate"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	PickupLocationID string    `json:"pickupLocationId"`
	TimeZoneLabel    string    `json:"timeZoneLabel,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SlotResponse is one selectable pickup time slot.
type SlotResponse struct {
	SlotStart time.Time `json:"slotStart"`
	SlotEnd   time.Time `json:"slotEnd"`
}
