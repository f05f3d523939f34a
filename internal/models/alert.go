package models

import "time"

// Известные типы SOS-сигналов. Клиент может прислать любой непустой тип.
const (
	AlertTypeVoice     = "voice"
	AlertTypeGesture   = "gesture"
	AlertTypeShake     = "shake"
	AlertTypeDeviation = "deviation"
	AlertTypeManual    = "manual"
)

// Статусы SOS-сигнала. Перехода в resolved пока нет.
const (
	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

// SOSAlert - экстренный сигнал пользователя
type SOSAlert struct {
	ID            string         `json:"id" bson:"id"`
	UserLocation  Location       `json:"user_location" bson:"user_location"`
	AlertType     string         `json:"alert_type" bson:"alert_type"`
	Confidence    float64        `json:"confidence" bson:"confidence"`
	Timestamp     time.Time      `json:"timestamp" bson:"timestamp"`
	Status        string         `json:"status" bson:"status"`
	AudioAnalysis map[string]any `json:"audio_analysis,omitempty" bson:"audio_analysis,omitempty"`
}

func (a *SOSAlert) DocumentID() string { return a.ID }
