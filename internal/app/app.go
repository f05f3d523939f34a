package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/safeguard_backend/internal/classifier"
	"github.com/shenikar/safeguard_backend/internal/config"
	v1 "github.com/shenikar/safeguard_backend/internal/handler/http/v1"
	"github.com/shenikar/safeguard_backend/internal/metrics"
	"github.com/shenikar/safeguard_backend/internal/repository"
	"github.com/shenikar/safeguard_backend/internal/service"
	"github.com/shenikar/safeguard_backend/internal/webhook"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safeguard_backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps - внешние зависимости сервисов. Cache и Planner могут быть nil.
type Deps struct {
	Repos     repository.Repositories
	Cache     service.RouteCache
	Publisher webhook.Publisher
	Planner   service.RoutePlanner
	Random    classifier.Random
}

// NewServices собирает сервисный слой
func NewServices(deps Deps, cfg *config.Config, logger *logrus.Logger) v1.Services {
	rnd := deps.Random
	if rnd == nil {
		rnd = classifier.DefaultRandom()
	}
	risk := service.NewRiskService(logger)

	return v1.Services{
		Risk: risk,
		Detection: service.NewDetectionService(
			classifier.NewMockVoiceAnalyzer(rnd, cfg.VoiceAnalysisDelay),
			classifier.NewMockGestureDetector(rnd),
			classifier.PatternShakeDetector{},
			logger,
		),
		Chat:        service.NewChatService(logger),
		SafetyRoute: service.NewSafetyRouteService(deps.Planner, risk, logger),
		Tracking:    service.NewRouteService(deps.Repos.Routes, deps.Cache, logger),
		Emergency:   service.NewEmergencyService(deps.Repos.Alerts, deps.Repos.Contacts, deps.Publisher, logger, cfg.ContactsListLimit),
	}
}

// NewRouter настраивает gin: метрики, CORS, API под /api и /api/v1, /metrics и Swagger
func NewRouter(services v1.Services, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.GinMiddleware(), v1.CORSMiddleware(cfg.CORSAllowedOrigins))

	handler := v1.NewHandler(services, logger, cfg)
	handler.RegisterRoutes(router.Group("/api"))
	handler.RegisterRoutes(router.Group("/api/v1"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return router
}
