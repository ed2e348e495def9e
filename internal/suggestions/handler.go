package suggestions

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/places"
	"restaurant-backend/internal/shared/server/middleware"
	"restaurant-backend/internal/shared/server/respond"
)

// Recommender is the service surface the handler depends on.
type Recommender interface {
	SuggestNearby(ctx context.Context, userID string, latitude, longitude float64) ([]Suggestion, error)
	SuggestForLocation(ctx context.Context, userID, locationName string) ([]Suggestion, error)
}

// Handler wires HTTP handlers to the suggestions service.
type Handler struct {
	Svc Recommender
}

// NewHandler constructs a Handler.
func NewHandler(svc Recommender) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches suggestion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions", h.suggestByCoordinates)
	rg.POST("/suggestions/location", h.suggestByLocation)
}

type coordinatesRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type locationRequest struct {
	LocationName string `json:"locationName"`
}

func (h *Handler) suggestByCoordinates(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req coordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Latitude and longitude must be numbers")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields: latitude and longitude")
		return
	}
	lat, lng := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid coordinates provided")
		return
	}

	result, err := h.Svc.SuggestNearby(c.Request.Context(), userID, lat, lng)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) suggestByLocation(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Location name must be a non-empty string")
		return
	}
	locationName := strings.TrimSpace(req.LocationName)
	if locationName == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required field: locationName")
		return
	}

	result, err := h.Svc.SuggestForLocation(c.Request.Context(), userID, locationName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, result)
}

// respondError maps service failures to HTTP statuses. Venue-fetch failures
// are fatal to the request; model failures were already absorbed upstream.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, places.ErrUnauthorized):
		respond.Error(c, http.StatusUnauthorized, "upstream_auth", "API authentication failed. Please check your API keys.")
	case errors.Is(err, places.ErrUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "upstream_unavailable", "Restaurant data service is currently unavailable.")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
	}
}
