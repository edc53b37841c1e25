package dto

// StorefrontEventResponse is the public detail view of a published event.
// The pre-order open time is omitted when the merchant chose to hide it.
type StorefrontEventResponse struct {
	Event   EventResponse      `json:"event"`
	Windows []WindowResponse   `json:"windows"`
	Menu    []MenuItemResponse `json:"menu"`
}
