package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safeguard_backend/internal/models"
)

// @Summary Start route tracking
// @Description Store a planned route and start watching for deviations
// @Tags Tracking
// @Accept json
// @Produce json
// @Param route body RouteTrackingRequest true "Planned route"
// @Success 200 {object} RouteTrackingResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Route id already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /route-tracking [post]
func (h *Handler) startRouteTracking(c *gin.Context) {
	var input RouteTrackingRequest
	log := h.logger.WithField("method", "startRouteTracking")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route := DTOToRouteModel(input)
	if err := h.services.Tracking.StartTracking(c.Request.Context(), route); err != nil {
		log.WithError(err).Error("Failed to start tracking in service")
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, RouteTrackingResponse{
		RouteID: route.ID,
		Status:  "tracking_started",
		Message: "Route tracking activated. You will be alerted if you deviate from the planned path.",
	})
}

// @Summary Update current location
// @Description Check the current location against a tracked route
// @Tags Tracking
// @Accept json
// @Produce json
// @Param route_id query string true "Route ID"
// @Param location body LocationUpdateRequest true "Current location"
// @Success 200 {object} LocationUpdateResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location-update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationUpdateRequest
	log := h.logger.WithField("method", "updateLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routeID := c.Query("route_id")
	if routeID == "" {
		routeID = input.RouteID
	}
	if routeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "route_id is required"})
		return
	}

	current, ok := currentLocation(input)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current location is required"})
		return
	}
	log = log.WithField("route_id", routeID)

	check, err := h.services.Tracking.UpdateLocation(c.Request.Context(), routeID, current)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Route not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		log.WithError(err).Error("Failed to update location in service")
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, DeviationCheckToResponse(check))
}

// currentLocation берет вложенный current_location, иначе плоские lat/lng
func currentLocation(input LocationUpdateRequest) (models.Location, bool) {
	if input.CurrentLocation != nil {
		return DTOToLocation(*input.CurrentLocation), true
	}
	if input.Lat != nil && input.Lng != nil {
		return models.Location{Lat: *input.Lat, Lng: *input.Lng}, true
	}
	return models.Location{}, false
}
