package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	sosQueueKey = "sos_notifications"
)

// SOSEvent - структура уведомления экстренным контактам
type SOSEvent struct {
	AlertID    string          `json:"alert_id"`
	AlertType  string          `json:"alert_type"`
	Location   models.Location `json:"location"`
	Confidence float64         `json:"confidence"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NewSOSEvent собирает событие из сохраненного сигнала
func NewSOSEvent(alert *models.SOSAlert) SOSEvent {
	return SOSEvent{
		AlertID:    alert.ID,
		AlertType:  alert.AlertType,
		Location:   alert.UserLocation,
		Confidence: alert.Confidence,
		Timestamp:  alert.Timestamp,
	}
}

// Publisher - интерфейс для публикации SOS-уведомлений
type Publisher interface {
	Publish(ctx context.Context, event SOSEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event SOSEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sos event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, sosQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish sos event to Redis: %w", err)
	}
	return nil
}

// LogPublisher только пишет уведомление в лог. Используется без Redis.
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event SOSEvent) error {
	logAlert(p.logger, event)
	return nil
}

// logAlert - заглушка доставки: в лог попадают тип, координаты и время сигнала
func logAlert(logger *logrus.Logger, event SOSEvent) {
	logger.WithFields(logrus.Fields{
		"alert_id":   event.AlertID,
		"alert_type": event.AlertType,
		"lat":        event.Location.Lat,
		"lng":        event.Location.Lng,
		"time":       event.Timestamp,
	}).Warn("EMERGENCY ALERT SENT")
}
