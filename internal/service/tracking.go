package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/safeguard_backend/internal/metrics"
	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
)

// waypointDelta - допуск совпадения позиции с точкой маршрута в градусах
const waypointDelta = 0.01

// RouteService определяет контракт отслеживания маршрута
type RouteService interface {
	StartTracking(ctx context.Context, route *models.RouteData) error
	UpdateLocation(ctx context.Context, routeID string, current models.Location) (*models.DeviationCheck, error)
}

type routeService struct {
	repo   RouteRepository
	cache  RouteCache
	logger *logrus.Logger
}

// NewRouteService создает сервис. cache может быть nil.
func NewRouteService(repo RouteRepository, cache RouteCache, logger *logrus.Logger) RouteService {
	return &routeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// StartTracking сохраняет маршрут, присваивая id при необходимости
func (s *routeService) StartTracking(ctx context.Context, route *models.RouteData) error {
	if route.ID == "" {
		route.ID = uuid.NewString()
	}
	if route.DeviationThreshold == 0 {
		route.DeviationThreshold = models.DefaultDeviationThreshold
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "route",
		"method":    "StartTracking",
		"route_id":  route.ID,
		"waypoints": len(route.PlannedRoute),
	})
	log.Info("Attempting to start route tracking")

	if err := s.repo.Create(ctx, route); err != nil {
		log.WithError(err).Error("Failed to store route in repository")
		return fmt.Errorf("service: could not start tracking: %w", err)
	}

	log.Info("Route tracking started")
	return nil
}

// UpdateLocation сверяет позицию с сохраненным маршрутом.
// Сам маршрут при этом не обновляется.
func (s *routeService) UpdateLocation(ctx context.Context, routeID string, current models.Location) (*models.DeviationCheck, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "route",
		"method":   "UpdateLocation",
		"route_id": routeID,
	})

	route, err := s.getRoute(ctx, routeID)
	if err != nil {
		log.WithError(err).Warn("Failed to load route")
		return nil, fmt.Errorf("service: could not load route %s: %w", routeID, err)
	}

	deviated := DetectDeviation(route.PlannedRoute, current)
	metrics.RecordDeviationCheck(deviated)
	log.WithField("deviation_detected", deviated).Info("Location checked against route")

	return &models.DeviationCheck{
		RouteID:         routeID,
		CurrentLocation: current,
		Deviated:        deviated,
	}, nil
}

// getRoute читает маршрут через кеш: кеш -> хранилище -> запись в кеш
func (s *routeService) getRoute(ctx context.Context, routeID string) (*models.RouteData, error) {
	log := s.logger.WithField("route_id", routeID)

	if s.cache != nil {
		cached, err := s.cache.GetRoute(ctx, routeID)
		if err != nil {
			log.WithError(err).Warn("Route cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	route, err := s.repo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRoute(ctx, route); err != nil {
			log.WithError(err).Warn("Route cache write failed")
		}
	}
	return route, nil
}

// DetectDeviation проходит точки маршрута по порядку: первая точка в пределах
// ±0.01° снимает флаг и останавливает обход, любая другая его выставляет.
// Пустой маршрут - отклонения нет.
func DetectDeviation(planned []models.Location, current models.Location) bool {
	deviated := false
	for _, point := range planned {
		if point.WithinBox(current, waypointDelta) {
			deviated = false
			break
		}
		deviated = true
	}
	return deviated
}
