package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/shenikar/safeguard_backend/internal/service/mocks"
	"github.com/shenikar/safeguard_backend/internal/webhook"
	webhook_mocks "github.com/shenikar/safeguard_backend/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type emergencyMocks struct {
	alerts    *mocks.MockDocumentRepository[*models.SOSAlert]
	contacts  *mocks.MockDocumentRepository[*models.EmergencyContact]
	publisher *webhook_mocks.MockPublisher
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestEmergencyService - сервис экстренных сигналов с моками
func newTestEmergencyService(t *testing.T) (*emergencyService, emergencyMocks) {
	ctrl := gomock.NewController(t)
	m := emergencyMocks{
		alerts:    mocks.NewMockDocumentRepository[*models.SOSAlert](ctrl),
		contacts:  mocks.NewMockDocumentRepository[*models.EmergencyContact](ctrl),
		publisher: webhook_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewEmergencyService(m.alerts, m.contacts, m.publisher, logger, 100).(*emergencyService)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestTriggerSOS_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()
	alert := &models.SOSAlert{
		UserLocation: models.Location{Lat: 28.6139, Lng: 77.2090},
		AlertType:    models.AlertTypeVoice,
		Confidence:   0.9,
		Status:       models.AlertStatusResolved,
	}

	// Ожидания
	gomock.InOrder(
		m.alerts.EXPECT().Create(ctx, alert).Return(nil).Times(1),
		m.publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, event webhook.SOSEvent) error {
				assert.Equal(t, alert.ID, event.AlertID)
				assert.Equal(t, models.AlertTypeVoice, event.AlertType)
				assert.Equal(t, alert.UserLocation, event.Location)
				return nil
			}).
			Times(1),
	)

	// Действие
	err := svc.TriggerSOS(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Equal(t, fixedNow, alert.Timestamp)
}

func TestTriggerSOS_PublishErrorIsNotFatal(t *testing.T) {
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()
	alert := &models.SOSAlert{ID: "alert-1", AlertType: models.AlertTypeManual}

	m.alerts.EXPECT().Create(ctx, alert).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue unavailable")).Times(1)

	err := svc.TriggerSOS(ctx, alert)

	require.NoError(t, err)
	assert.Equal(t, "alert-1", alert.ID)
}

func TestTriggerSOS_RepositoryError(t *testing.T) {
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()
	alert := &models.SOSAlert{AlertType: models.AlertTypeGesture}
	dbErr := errors.New("connection refused")

	m.alerts.EXPECT().Create(ctx, alert).Return(dbErr).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.TriggerSOS(ctx, alert)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestTriggerSOS_KeepsClientTimestamp(t *testing.T) {
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	alert := &models.SOSAlert{AlertType: models.AlertTypeDeviation, Timestamp: ts}

	m.alerts.EXPECT().Create(ctx, alert).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, svc.TriggerSOS(ctx, alert))
	assert.Equal(t, ts, alert.Timestamp)
}

func TestAddContact_KeepsZeroPriority(t *testing.T) {
	// Подготовка
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()
	contact := &models.EmergencyContact{Name: "Mom", Phone: "+91-9876543210", Relation: "mother"}

	// Ожидания
	m.contacts.EXPECT().Create(ctx, contact).Return(nil).Times(1)

	// Действие
	err := svc.AddContact(ctx, contact)

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, 0, contact.Priority)
}

func TestAddContact_Conflict(t *testing.T) {
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()
	contact := &models.EmergencyContact{ID: "c-1", Name: "Dad", Phone: "1", Priority: 2}

	m.contacts.EXPECT().Create(ctx, contact).Return(models.ErrAlreadyExists).Times(1)

	err := svc.AddContact(ctx, contact)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.Equal(t, 2, contact.Priority)
}

func TestListContacts(t *testing.T) {
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()
	expected := []*models.EmergencyContact{
		{ID: "c-1", Name: "Mom", Phone: "1", Priority: 1},
		{ID: "c-2", Name: "Dad", Phone: "2", Priority: 2},
	}

	m.contacts.EXPECT().List(ctx, 100).Return(expected, nil).Times(1)

	contacts, err := svc.ListContacts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, contacts)
}

func TestListContacts_Error(t *testing.T) {
	svc, m := newTestEmergencyService(t)
	ctx := context.Background()

	m.contacts.EXPECT().List(ctx, 100).Return(nil, errors.New("timeout")).Times(1)

	contacts, err := svc.ListContacts(ctx)

	require.Error(t, err)
	assert.Nil(t, contacts)
}
