package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/server/http/dto"
)

// StorefrontHandler serves the public, unauthenticated storefront surface.
type StorefrontHandler struct {
	facade StorefrontPublicFacade
}

// NewStorefrontHandler constructs StorefrontHandler.
func NewStorefrontHandler(facade StorefrontPublicFacade) *StorefrontHandler {
	return &StorefrontHandler{facade: facade}
}

func toPublicEventResponse(e model.Event) dto.EventResponse {
	resp := toEventResponse(e)
	if e.HideOpenTime {
		resp.PreOrderTime = ""
	}
	return resp
}

// List handles GET /api/storefront/events.
func (h *StorefrontHandler) List(c *gin.Context) {
	events, err := h.facade.StorefrontEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		response = append(response, toPublicEventResponse(e))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/storefront/events/:id.
func (h *StorefrontHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, windows, menu, err := h.facade.StorefrontEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	windowResponses := make([]dto.WindowResponse, 0, len(windows))
	for _, w := range windows {
		windowResponses = append(windowResponses, toWindowResponse(w))
	}
	menuResponses := make([]dto.MenuItemResponse, 0, len(menu))
	for _, item := range menu {
		menuResponses = append(menuResponses, toMenuItemResponse(item))
	}

	c.JSON(http.StatusOK, dto.StorefrontEventResponse{
		Event:   toPublicEventResponse(*event),
		Windows: windowResponses,
		Menu:    menuResponses,
	})
}

// Slots handles GET /api/storefront/windows/:id/slots.
func (h *StorefrontHandler) Slots(c *gin.Context) {
	windowID, ok := pathID(c, "id")
	if !ok {
		return
	}
	slots, err := h.facade.StorefrontWindowSlots(c.Request.Context(), windowID)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		response = append(response, dto.SlotResponse{SlotStart: s.Start, SlotEnd: s.End})
	}
	c.JSON(http.StatusOK, response)
}
