package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safeguard_backend/internal/models"
)

// @Summary Get location risk
// @Description Score a location by nearby historical incidents
// @Tags Safety
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query int false "Radius in meters" default(1000)
// @Success 200 {object} RiskAnalysisResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /risk-analysis [get]
func (h *Handler) getLocationRisk(c *gin.Context) {
	var input RiskAnalysisQuery
	log := h.logger.WithField("method", "getLocationRisk")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	risk := h.services.Risk.GetLocationRisk(c.Request.Context(), *input.Lat, *input.Lng, input.Radius)
	c.JSON(http.StatusOK, RiskAssessmentToResponse(risk))
}

// @Summary Get safest route
// @Description Get a walking route between two points annotated with safety levels
// @Tags Safety
// @Accept json
// @Produce json
// @Param start_lat query number true "Start latitude"
// @Param start_lng query number true "Start longitude"
// @Param end_lat query number true "End latitude"
// @Param end_lng query number true "End longitude"
// @Success 200 {object} SafetyRouteResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /safety-route [get]
func (h *Handler) getSafeRoute(c *gin.Context) {
	var input SafetyRouteQuery
	log := h.logger.WithField("method", "getSafeRoute")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := models.Location{Lat: *input.StartLat, Lng: *input.StartLng}
	end := models.Location{Lat: *input.EndLat, Lng: *input.EndLng}
	route := h.services.SafetyRoute.GetSafeRoute(c.Request.Context(), start, end)
	c.JSON(http.StatusOK, SafeRouteToResponse(route))
}

// @Summary Ask the safety assistant
// @Description Keyword-based safety chatbot
// @Tags Safety
// @Accept x-www-form-urlencoded
// @Produce json
// @Param message query string true "User message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string "Message missing"
// @Router /safety-chat [post]
func (h *Handler) safetyChat(c *gin.Context) {
	log := h.logger.WithField("method", "safetyChat")

	message, ok := c.GetQuery("message")
	if !ok {
		message, ok = c.GetPostForm("message")
	}
	if !ok {
		log.Warn("Message missing from request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply := h.services.Chat.Respond(c.Request.Context(), message)
	c.JSON(http.StatusOK, ChatResponse{
		Response:    reply.Response,
		Suggestions: reply.Suggestions,
	})
}
