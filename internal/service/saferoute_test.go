package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/shenikar/safeguard_backend/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	routeStart = models.Location{Lat: 28.6139, Lng: 77.2090}
	routeEnd   = models.Location{Lat: 28.7041, Lng: 77.1025}
)

func TestGetSafeRoute_WithoutPlanner(t *testing.T) {
	svc := NewSafetyRouteService(nil, NewRiskService(newTestLogger()), newTestLogger())

	route := svc.GetSafeRoute(context.Background(), routeStart, routeEnd)

	require.Len(t, route.Waypoints, 3)
	assert.Equal(t, models.RouteWaypoint{Location: routeStart, Safety: SafetyHigh}, route.Waypoints[0])
	assert.Equal(t, SafetyMedium, route.Waypoints[1].Safety)
	assert.InDelta(t, 28.659, route.Waypoints[1].Location.Lat, 1e-9)
	assert.InDelta(t, 77.15575, route.Waypoints[1].Location.Lng, 1e-9)
	assert.Equal(t, models.RouteWaypoint{Location: routeEnd, Safety: SafetyHigh}, route.Waypoints[2])
	assert.Equal(t, "2.3 km", route.TotalDistance)
	assert.Equal(t, "8 minutes", route.EstimatedTime)
	assert.Equal(t, 0.85, route.SafetyScore)
	assert.Len(t, route.Alerts, 2)
}

func TestGetSafeRoute_PlannerFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockRoutePlanner(ctrl)
	ctx := context.Background()

	planner.EXPECT().Plan(ctx, routeStart, routeEnd).Return(nil, errors.New("quota exceeded")).Times(1)

	svc := NewSafetyRouteService(planner, NewRiskService(newTestLogger()), newTestLogger())
	route := svc.GetSafeRoute(ctx, routeStart, routeEnd)

	assert.Equal(t, "2.3 km", route.TotalDistance)
	assert.Len(t, route.Waypoints, 3)
}

func TestGetSafeRoute_ScoresPlannedPath(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockRoutePlanner(ctrl)
	risk := mocks.NewMockRiskService(ctrl)
	ctx := context.Background()
	quiet := models.Location{Lat: 28.70, Lng: 77.10}

	// Ожидания
	planner.EXPECT().
		Plan(ctx, routeStart, routeEnd).
		Return(&models.PlannedPath{
			Points:   []models.Location{routeStart, quiet},
			Distance: "12.4 km",
			Duration: "2 hours 31 mins",
		}, nil).
		Times(1)
	risk.EXPECT().
		GetLocationRisk(ctx, routeStart.Lat, routeStart.Lng, 0).
		Return(&models.RiskAssessment{RiskScore: 0.8, RiskLevel: RiskLevelHigh}).
		Times(1)
	risk.EXPECT().
		GetLocationRisk(ctx, quiet.Lat, quiet.Lng, 0).
		Return(&models.RiskAssessment{RiskScore: 0, RiskLevel: RiskLevelLow}).
		Times(1)

	// Действие
	svc := NewSafetyRouteService(planner, risk, newTestLogger())
	route := svc.GetSafeRoute(ctx, routeStart, routeEnd)

	// Проверки
	require.Len(t, route.Waypoints, 2)
	assert.Equal(t, SafetyLow, route.Waypoints[0].Safety)
	assert.Equal(t, SafetyHigh, route.Waypoints[1].Safety)
	assert.Equal(t, "12.4 km", route.TotalDistance)
	assert.Equal(t, "2 hours 31 mins", route.EstimatedTime)
	assert.InDelta(t, 0.6, route.SafetyScore, 1e-9)
}
