package service

import (
	"context"

	"github.com/shenikar/safeguard_backend/internal/models"
)

// DocumentRepository определяет контракт хранилища документов одного типа.
// Реализации: Postgres (JSONB), MongoDB и in-memory.
type DocumentRepository[T models.Document] interface {
	Create(ctx context.Context, doc T) error
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context, limit int) ([]T, error)
}

type (
	RouteRepository   = DocumentRepository[*models.RouteData]
	AlertRepository   = DocumentRepository[*models.SOSAlert]
	ContactRepository = DocumentRepository[*models.EmergencyContact]
)

// RouteCache - кеш маршрутов. Промах кеша - (nil, nil).
type RouteCache interface {
	GetRoute(ctx context.Context, id string) (*models.RouteData, error)
	SetRoute(ctx context.Context, route *models.RouteData) error
}

// RoutePlanner строит пешеходный маршрут между двумя точками
type RoutePlanner interface {
	Plan(ctx context.Context, start, end models.Location) (*models.PlannedPath, error)
}
