package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenside/storefront/internal/server/http/dto"
	"github.com/ovenside/storefront/internal/usecase"
)

// EventHandler manages merchant event endpoints.
type EventHandler struct {
	facade EventFacade
}

// NewEventHandler constructs EventHandler.
func NewEventHandler(facade EventFacade) *EventHandler {
	return &EventHandler{facade: facade}
}

func eventInput(req dto.EventRequest) usecase.EventInput {
	return usecase.EventInput{
		Title:              req.Title,
		Description:        req.Description,
		OpenDate:           req.PreOrderDate,
		OpenTime:           req.PreOrderTime,
		CloseOption:        req.OrderClosePolicy.Option,
		CloseHours:         req.OrderClosePolicy.Hours,
		CloseMinutes:       req.OrderClosePolicy.Minutes,
		CloseDate:          req.OrderClosePolicy.Date,
		CloseTime:          req.OrderClosePolicy.Time,
		TimeSlotMinutes:    req.TimeSlotsOption,
		WalkUpOrdering:     req.WalkUpOrdering,
		WalkUpMode:         req.WalkUpOrderingOption,
		HideOpenTime:       req.HideOpenTime,
		HideFromStorefront: req.HideFromStorefront,
	}
}

// Create handles POST /api/events.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	event, err := h.facade.CreateEvent(c.Request.Context(), CurrentMerchantID(c), eventInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(*event))
}

// Update handles PUT /api/events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	event, err := h.facade.UpdateEvent(c.Request.Context(), CurrentMerchantID(c), id, eventInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*event))
}

// Get handles GET /api/events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := h.facade.Event(c.Request.Context(), CurrentMerchantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*event))
}

// List handles GET /api/events.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.facade.Events(c.Request.Context(), CurrentMerchantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		response = append(response, toEventResponse(e))
	}
	c.JSON(http.StatusOK, response)
}

// Publish handles POST /api/events/:id/publish.
func (h *EventHandler) Publish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := h.facade.PublishEvent(c.Request.Context(), CurrentMerchantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*event))
}

// Readiness handles GET /api/events/:id/readiness.
func (h *EventHandler) Readiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := h.facade.EventReadiness(c.Request.Context(), CurrentMerchantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReadinessResponse{Ready: report.Ready, Missing: reasonStrings(report.Missing)})
}

// Close handles GET /api/events/:id/close.
func (h *EventHandler) Close(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resolution, err := h.facade.EventClose(c.Request.Context(), CurrentMerchantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CloseResponse{
		CloseAt:   resolution.Effective,
		PerWindow: perWindowPayload(resolution.PerWindow),
	})
}
