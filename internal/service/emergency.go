package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safeguard_backend/internal/metrics"
	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/shenikar/safeguard_backend/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EmergencyService определяет контракт SOS-сигналов и экстренных контактов
type EmergencyService interface {
	TriggerSOS(ctx context.Context, alert *models.SOSAlert) error
	AddContact(ctx context.Context, contact *models.EmergencyContact) error
	ListContacts(ctx context.Context) ([]*models.EmergencyContact, error)
}

type emergencyService struct {
	alerts       AlertRepository
	contacts     ContactRepository
	publisher    webhook.Publisher
	logger       *logrus.Logger
	contactLimit int
	now          func() time.Time
}

func NewEmergencyService(
	alerts AlertRepository,
	contacts ContactRepository,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	contactLimit int,
) EmergencyService {
	return &emergencyService{
		alerts:       alerts,
		contacts:     contacts,
		publisher:    publisher,
		logger:       logger,
		contactLimit: contactLimit,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// TriggerSOS сохраняет сигнал и отправляет уведомление.
// Ошибка уведомления только логируется: доставка best-effort, не более одного раза.
func (s *emergencyService) TriggerSOS(ctx context.Context, alert *models.SOSAlert) error {
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = s.now()
	}
	alert.Status = models.AlertStatusActive

	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency",
		"method":     "TriggerSOS",
		"alert_id":   alert.ID,
		"alert_type": alert.AlertType,
	})
	log.Info("Attempting to store SOS alert")

	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to store SOS alert in repository")
		return fmt.Errorf("service: could not store sos alert: %w", err)
	}
	metrics.RecordSOSAlert(alert.AlertType)

	if err := s.publisher.Publish(ctx, webhook.NewSOSEvent(alert)); err != nil {
		log.WithError(err).Error("Failed to publish SOS notification")
	}

	log.Info("SOS alert sent")
	return nil
}

// AddContact сохраняет экстренный контакт. Приоритет не меняется, даже нулевой.
func (s *emergencyService) AddContact(ctx context.Context, contact *models.EmergencyContact) error {
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency",
		"method":     "AddContact",
		"contact_id": contact.ID,
	})
	log.Info("Attempting to add emergency contact")

	if err := s.contacts.Create(ctx, contact); err != nil {
		log.WithError(err).Error("Failed to store contact in repository")
		return fmt.Errorf("service: could not add contact: %w", err)
	}

	log.Info("Emergency contact added")
	return nil
}

// ListContacts возвращает контакты, не больше contactLimit
func (s *emergencyService) ListContacts(ctx context.Context) ([]*models.EmergencyContact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListContacts",
		"limit":   s.contactLimit,
	})

	contacts, err := s.contacts.List(ctx, s.contactLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list contacts from repository")
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}

	log.WithField("count", len(contacts)).Info("Contacts listed successfully")
	return contacts, nil
}
