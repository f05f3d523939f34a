package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Детекторы опасности
	api.POST("/voice-analysis", h.analyzeVoice)
	api.POST("/gesture-detection", h.detectGesture)
	api.POST("/shake-detection", h.detectShake)

	// Карта безопасности и чат-бот
	api.GET("/risk-analysis", h.getLocationRisk)
	api.GET("/safety-route", h.getSafeRoute)
	api.POST("/safety-chat", h.safetyChat)

	// Отслеживание маршрута
	api.POST("/route-tracking", h.startRouteTracking)
	api.POST("/location-update", h.updateLocation)

	// Экстренные сигналы и контакты
	api.POST("/emergency-sos", h.triggerSOS)
	contacts := api.Group("/emergency-contacts")
	if len(h.cfg.APIKeys) > 0 {
		contacts.Use(APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger))
	}
	{
		contacts.POST("", h.addEmergencyContact)
		contacts.GET("", h.listEmergencyContacts)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
