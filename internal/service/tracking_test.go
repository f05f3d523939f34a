package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/shenikar/safeguard_backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRouteService - сервис маршрутов с моками хранилища и кеша
func newTestRouteService(t *testing.T) (*routeService, *mocks.MockDocumentRepository[*models.RouteData], *mocks.MockRouteCache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDocumentRepository[*models.RouteData](ctrl)
	cacheMock := mocks.NewMockRouteCache(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewRouteService(repoMock, cacheMock, logger)
	return svc.(*routeService), repoMock, cacheMock
}

func testRoute() *models.RouteData {
	return &models.RouteData{
		ID:            "route-1",
		StartLocation: models.Location{Lat: 28.6139, Lng: 77.2090},
		Destination:   models.Location{Lat: 28.6169, Lng: 77.2120},
		PlannedRoute: []models.Location{
			{Lat: 28.6139, Lng: 77.2090},
			{Lat: 28.6169, Lng: 77.2120},
		},
		DeviationThreshold: 500,
		IsActive:           true,
	}
}

func TestStartTracking_AssignsIDAndThreshold(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestRouteService(t)
	ctx := context.Background()
	route := &models.RouteData{PlannedRoute: []models.Location{{Lat: 1, Lng: 1}}}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, route).
		Return(nil).
		Times(1)

	// Действие
	err := svc.StartTracking(ctx, route)

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, route.ID)
	assert.Equal(t, models.DefaultDeviationThreshold, route.DeviationThreshold)
}

func TestStartTracking_KeepsClientID(t *testing.T) {
	svc, repoMock, _ := newTestRouteService(t)
	ctx := context.Background()
	route := testRoute()
	route.DeviationThreshold = 0

	repoMock.EXPECT().Create(ctx, route).Return(nil).Times(1)

	require.NoError(t, svc.StartTracking(ctx, route))
	assert.Equal(t, "route-1", route.ID)
	assert.Equal(t, 500, route.DeviationThreshold)
}

func TestStartTracking_DuplicateID(t *testing.T) {
	svc, repoMock, _ := newTestRouteService(t)
	ctx := context.Background()
	route := testRoute()

	repoMock.EXPECT().
		Create(ctx, route).
		Return(fmt.Errorf("repository: %w", models.ErrAlreadyExists)).
		Times(1)

	err := svc.StartTracking(ctx, route)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestUpdateLocation_FromCache(t *testing.T) {
	// Подготовка
	svc, _, cacheMock := newTestRouteService(t)
	ctx := context.Background()
	route := testRoute()
	current := models.Location{Lat: 28.6140, Lng: 77.2091}

	// Ожидания
	cacheMock.EXPECT().
		GetRoute(ctx, route.ID).
		Return(route, nil).
		Times(1)

	// Действие
	check, err := svc.UpdateLocation(ctx, route.ID, current)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, route.ID, check.RouteID)
	assert.Equal(t, current, check.CurrentLocation)
	assert.False(t, check.Deviated)
}

func TestUpdateLocation_FromRepository(t *testing.T) {
	// Подготовка
	svc, repoMock, cacheMock := newTestRouteService(t)
	ctx := context.Background()
	route := testRoute()
	current := models.Location{Lat: 28.7000, Lng: 77.3000}

	// Ожидания
	// 1. Промах кеша
	cacheMock.EXPECT().
		GetRoute(ctx, route.ID).
		Return(nil, nil).
		Times(1)

	// 2. Чтение из хранилища
	repoMock.EXPECT().
		GetByID(ctx, route.ID).
		Return(route, nil).
		Times(1)

	// 3. Запись в кеш
	cacheMock.EXPECT().
		SetRoute(ctx, route).
		Return(nil).
		Times(1)

	// Действие
	check, err := svc.UpdateLocation(ctx, route.ID, current)

	// Проверки
	require.NoError(t, err)
	assert.True(t, check.Deviated)
}

func TestUpdateLocation_CacheErrorsAreIgnored(t *testing.T) {
	svc, repoMock, cacheMock := newTestRouteService(t)
	ctx := context.Background()
	route := testRoute()

	cacheMock.EXPECT().GetRoute(ctx, route.ID).Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().GetByID(ctx, route.ID).Return(route, nil).Times(1)
	cacheMock.EXPECT().SetRoute(ctx, route).Return(errors.New("redis down")).Times(1)

	check, err := svc.UpdateLocation(ctx, route.ID, route.StartLocation)

	require.NoError(t, err)
	assert.False(t, check.Deviated)
}

func TestUpdateLocation_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, cacheMock := newTestRouteService(t)
	ctx := context.Background()

	// Ожидания
	cacheMock.EXPECT().GetRoute(ctx, "missing").Return(nil, nil).Times(1)
	repoMock.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, fmt.Errorf("repository: %w", models.ErrNotFound)).
		Times(1)

	// Действие
	check, err := svc.UpdateLocation(ctx, "missing", models.Location{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, check)
}

func TestUpdateLocation_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDocumentRepository[*models.RouteData](ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := NewRouteService(repoMock, nil, logger)
	route := testRoute()

	repoMock.EXPECT().GetByID(gomock.Any(), route.ID).Return(route, nil).Times(1)

	check, err := svc.UpdateLocation(context.Background(), route.ID, route.Destination)

	require.NoError(t, err)
	assert.False(t, check.Deviated)
}

func TestDetectDeviation(t *testing.T) {
	a := models.Location{Lat: 28.6139, Lng: 77.2090}
	b := models.Location{Lat: 28.6500, Lng: 77.2500}

	tests := []struct {
		name     string
		planned  []models.Location
		current  models.Location
		expected bool
	}{
		{name: "empty route", planned: nil, current: a, expected: false},
		{name: "at first waypoint", planned: []models.Location{a, b}, current: a, expected: false},
		{name: "at last waypoint", planned: []models.Location{a, b}, current: b, expected: false},
		{name: "near waypoint", planned: []models.Location{a}, current: models.Location{Lat: 28.6200, Lng: 77.2150}, expected: false},
		{name: "far from all", planned: []models.Location{a, b}, current: models.Location{Lat: 29, Lng: 78}, expected: true},
		{name: "lat close lng far", planned: []models.Location{a}, current: models.Location{Lat: a.Lat, Lng: a.Lng + 0.02}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectDeviation(tt.planned, tt.current))
		})
	}
}
