package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenside/storefront/internal/server/http/dto"
	"github.com/ovenside/storefront/internal/usecase"
)

// WindowHandler manages pickup window endpoints.
type WindowHandler struct {
	facade WindowFacade
}

// NewWindowHandler constructs WindowHandler.
func NewWindowHandler(facade WindowFacade) *WindowHandler {
	return &WindowHandler{facade: facade}
}

func windowInput(req dto.WindowRequest) usecase.WindowInput {
	return usecase.WindowInput{
		Date:          req.PickupDate,
		Start:         req.StartTime,
		End:           req.EndTime,
		LocationID:    req.PickupLocationID,
		TimeZoneLabel: req.TimeZoneLabel,
	}
}

// Add handles POST /api/events/:id/windows.
func (h *WindowHandler) Add(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	window, err := h.facade.AddWindow(c.Request.Context(), CurrentMerchantID(c), eventID, windowInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toWindowResponse(*window))
}

// Update handles PUT /api/windows/:id.
func (h *WindowHandler) Update(c *gin.Context) {
	windowID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	window, err := h.facade.UpdateWindow(c.Request.Context(), CurrentMerchantID(c), windowID, windowInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWindowResponse(*window))
}

// Delete handles DELETE /api/windows/:id.
func (h *WindowHandler) Delete(c *gin.Context) {
	windowID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteWindow(c.Request.Context(), CurrentMerchantID(c), windowID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /api/events/:id/windows.
func (h *WindowHandler) List(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	windows, err := h.facade.EventWindows(c.Request.Context(), CurrentMerchantID(c), eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.WindowResponse, 0, len(windows))
	for _, w := range windows {
		response = append(response, toWindowResponse(w))
	}
	c.JSON(http.StatusOK, response)
}

// Slots handles GET /api/windows/:id/slots.
func (h *WindowHandler) Slots(c *gin.Context) {
	windowID, ok := pathID(c, "id")
	if !ok {
		return
	}
	slots, err := h.facade.WindowSlots(c.Request.Context(), CurrentMerchantID(c), windowID)
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
