package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safeguard_backend/internal/config"
	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/shenikar/safeguard_backend/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - сервисы, которые обслуживает HTTP-слой
type Services struct {
	Risk        service.RiskService
	Detection   service.DetectionService
	Chat        service.ChatService
	SafetyRoute service.SafetyRouteService
	Tracking    service.RouteService
	Emergency   service.EmergencyService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// errorResponse сопоставляет ошибку сервиса с HTTP-статусом
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, models.ErrAlreadyExists):
		return http.StatusConflict, "resource with this id already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
