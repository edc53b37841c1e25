package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/server/http/dto"
	"github.com/ovenside/storefront/internal/server/http/middleware"
)

// CurrentMerchantID extracts authenticated merchant identifier from context.
func CurrentMerchantID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.MerchantIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors to HTTP statuses with structured bodies.
// Validation and readiness failures carry every violated rule at once.
func respondError(c *gin.Context, err error) {
	var validation *domainErrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationResponse{Errors: validation.Fields})
		return
	}

	var notReady *domainErrors.NotReadyError
	if errors.As(err, &notReady) {
		c.JSON(http.StatusConflict, dto.ReadinessResponse{Ready: false, Missing: reasonStrings(notReady.Missing)})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrNoWindowsAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "cannot determine close time: no pickup windows"})
	case errors.Is(err, domainErrors.ErrAlreadyPublished):
		c.JSON(http.StatusConflict, gin.H{"error": "event already published"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.Status(http.StatusUnauthorized)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func reasonStrings(reasons []model.ReadinessReason) []string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, string(r))
	}
	return out
}

func toEventResponse(e model.Event) dto.EventResponse {
	resp := dto.EventResponse{
		ID:                 e.ID.String(),
		Title:              e.Title,
		Description:        e.Description,
		PreOrderDate:       model.FormatDate(e.OpenDate),
		PreOrderTime:       e.OpenTime.String(),
		OrderClosePolicy:   toPolicyPayload(e.ClosePolicy),
		Status:             string(e.Status),
		TimeSlotsOption:    int(e.TimeSlots),
		WalkUpOrdering:     e.WalkUpOrdering,
		HideOpenTime:       e.HideOpenTime,
		HideFromStorefront: e.HideFromStorefront,
		CloseAt:            e.CloseAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	if e.WalkUpOrdering {
		resp.WalkUpOrderingOption = string(e.WalkUpMode)
	}
	return resp
}

func toPolicyPayload(p model.ClosePolicy) dto.ClosePolicyPayload {
	payload := dto.ClosePolicyPayload{Option: string(p.Option())}
	switch p.Option() {
	case model.CloseTimeBefore:
		payload.Hours, payload.Minutes = p.Offset()
	case model.CloseSpecificTime:
		payload.Date = model.FormatDate(p.At())
		payload.Time = model.Clock{Hour: p.At().Hour(), Minute: p.At().Minute()}.String()
	}
	return payload
}

func toWindowResponse(w model.PickupWindow) dto.WindowResponse {
	return dto.WindowResponse{
		ID:               w.ID.String(),
		EventID:          w.EventID.String(),
		PickupDate:       model.FormatDate(w.Date),
		StartTime:        w.Start.String(),
		EndTime:          w.End.String(),
		PickupLocationID: w.LocationID.String(),
		TimeZoneLabel:    w.TimeZoneLabel,
		UpdatedAt:        w.UpdatedAt,
	}
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:         item.ID.String(),
		EventID:    item.EventID.String(),
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Available:  item.Available,
	}
}

func perWindowPayload(perWindow map[uuid.UUID]time.Time) map[string]time.Time {
	if len(perWindow) == 0 {
		return nil
	}
	out := make(map[string]time.Time, len(perWindow))
	for id, at := range perWindow {
		out[id.String()] = at
	}
	return out
}
