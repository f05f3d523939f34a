package service

import (
	"context"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	SafetyHigh   = "high"
	SafetyMedium = "medium"
	SafetyLow    = "low"
)

const demoSafetyScore = 0.85

var routeAlerts = []string{
	"Well-lit path recommended",
	"CCTV coverage available on this route",
}

// SafetyRouteService определяет контракт подбора безопасного маршрута
type SafetyRouteService interface {
	GetSafeRoute(ctx context.Context, start, end models.Location) *models.SafeRoute
}

type safetyRouteService struct {
	planner RoutePlanner
	risk    RiskService
	logger  *logrus.Logger
}

// NewSafetyRouteService создает сервис. planner == nil - всегда демо-маршрут.
func NewSafetyRouteService(planner RoutePlanner, risk RiskService, logger *logrus.Logger) SafetyRouteService {
	return &safetyRouteService{
		planner: planner,
		risk:    risk,
		logger:  logger,
	}
}

// GetSafeRoute строит маршрут через навигатор, при ошибке - демо-маршрут
func (s *safetyRouteService) GetSafeRoute(ctx context.Context, start, end models.Location) *models.SafeRoute {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety_route",
		"method":  "GetSafeRoute",
	})

	if s.planner == nil {
		return demoRoute(start, end)
	}

	path, err := s.planner.Plan(ctx, start, end)
	if err != nil || path == nil || len(path.Points) == 0 {
		log.WithError(err).Warn("Route planner failed, falling back to demo route")
		return demoRoute(start, end)
	}

	route := &models.SafeRoute{
		Waypoints:     make([]models.RouteWaypoint, 0, len(path.Points)),
		TotalDistance: path.Distance,
		EstimatedTime: path.Duration,
		Alerts:        append([]string(nil), routeAlerts...),
	}

	var riskSum float64
	for _, point := range path.Points {
		assessment := s.risk.GetLocationRisk(ctx, point.Lat, point.Lng, 0)
		riskSum += assessment.RiskScore
		route.Waypoints = append(route.Waypoints, models.RouteWaypoint{
			Location: point,
			Safety:   safetyFromRisk(assessment.RiskLevel),
		})
	}
	route.SafetyScore = 1 - riskSum/float64(len(path.Points))

	log.WithField("waypoints", len(route.Waypoints)).Info("Safe route planned")
	return route
}

// demoRoute - старт, середина и финиш с фиксированными метриками
func demoRoute(start, end models.Location) *models.SafeRoute {
	mid := models.Location{
		Lat: (start.Lat + end.Lat) / 2,
		Lng: (start.Lng + end.Lng) / 2,
	}
	return &models.SafeRoute{
		Waypoints: []models.RouteWaypoint{
			{Location: start, Safety: SafetyHigh},
			{Location: mid, Safety: SafetyMedium},
			{Location: end, Safety: SafetyHigh},
		},
		TotalDistance: "2.3 km",
		EstimatedTime: "8 minutes",
		SafetyScore:   demoSafetyScore,
		Alerts:        append([]string(nil), routeAlerts...),
	}
}

func safetyFromRisk(level string) string {
	switch level {
	case RiskLevelHigh:
		return SafetyLow
	case RiskLevelMedium:
		return SafetyMedium
	default:
		return SafetyHigh
	}
}
