package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/shenikar/safeguard_backend/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
)

// Имена таблиц и коллекций
const (
	RoutesCollection   = "active_routes"
	AlertsCollection   = "sos_alerts"
	ContactsCollection = "emergency_contacts"
)

// Repositories - набор хранилищ для сервисов
type Repositories struct {
	Routes   service.RouteRepository
	Alerts   service.AlertRepository
	Contacts service.ContactRepository
}

func newRoute() *models.RouteData          { return &models.RouteData{} }
func newAlert() *models.SOSAlert           { return &models.SOSAlert{} }
func newContact() *models.EmergencyContact { return &models.EmergencyContact{} }

func NewPostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Routes:   NewPostgresDocuments(db, RoutesCollection, newRoute),
		Alerts:   NewPostgresDocuments(db, AlertsCollection, newAlert),
		Contacts: NewPostgresDocuments(db, ContactsCollection, newContact),
	}
}

// NewMongoRepositories создает хранилища и уникальные индексы по id
func NewMongoRepositories(ctx context.Context, db *mongo.Database) (Repositories, error) {
	routes := NewMongoDocuments(db, RoutesCollection, newRoute)
	alerts := NewMongoDocuments(db, AlertsCollection, newAlert)
	contacts := NewMongoDocuments(db, ContactsCollection, newContact)

	for _, ensure := range []func(context.Context) error{
		routes.EnsureIndexes,
		alerts.EnsureIndexes,
		contacts.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return Repositories{}, err
		}
	}

	return Repositories{
		Routes:   routes,
		Alerts:   alerts,
		Contacts: contacts,
	}, nil
}

func NewMemoryRepositories() Repositories {
	return Repositories{
		Routes:   NewMemoryDocuments[*models.RouteData](),
		Alerts:   NewMemoryDocuments[*models.SOSAlert](),
		Contacts: NewMemoryDocuments[*models.EmergencyContact](),
	}
}
