package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenside/storefront/internal/server/http/dto"
)

// CatalogHandler manages pickup location and menu item endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// CreateLocation handles POST /api/locations.
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	location, err := h.facade.CreateLocation(c.Request.Context(), CurrentMerchantID(c), req.Name, req.Address, req.TaxRate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.LocationResponse{
		ID:        location.ID.String(),
		Name:      location.Name,
		Address:   location.Address,
		TaxRate:   location.TaxRate,
		CreatedAt: location.CreatedAt,
	})
}

// ListLocations handles GET /api/locations.
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.facade.Locations(c.Request.Context(), CurrentMerchantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		response = append(response, dto.LocationResponse{
			ID:        l.ID.String(),
			Name:      l.Name,
			Address:   l.Address,
			TaxRate:   l.TaxRate,
			CreatedAt: l.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/events/:id/menu.
func (h *CatalogHandler) AddMenuItem(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := h.facade.AddMenuItem(c.Request.Context(), CurrentMerchantID(c), eventID, req.Name, req.PriceCents, available)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMenuItemResponse(*item))
}

// ListMenu handles GET /api/events/:id/menu.
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.facade.EventMenu(c.Request.Context(), CurrentMerchantID(c), eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// DeleteMenuItem handles DELETE /api/menu/:id.
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteMenuItem(c.Request.Context(), CurrentMerchantID(c), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
