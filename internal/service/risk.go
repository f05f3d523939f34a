package service

import (
	"context"
	"math"
	"time"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
)

// nearbyDelta - полуширина окна поиска в градусах (около 1 км)
const nearbyDelta = 0.01

const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

const (
	riskPerIncident = 0.2
	maxRecent       = 3
)

// DemoIncidents возвращает статический набор инцидентов (Нью-Дели)
func DemoIncidents() []models.IncidentReport {
	return []models.IncidentReport{
		{Location: models.Location{Lat: 28.6139, Lng: 77.2090}, Type: "harassment", Severity: 3, Timestamp: time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC)},
		{Location: models.Location{Lat: 28.6129, Lng: 77.2080}, Type: "stalking", Severity: 4, Timestamp: time.Date(2024, 1, 10, 21, 15, 0, 0, time.UTC)},
		{Location: models.Location{Lat: 28.6149, Lng: 77.2100}, Type: "catcalling", Severity: 2, Timestamp: time.Date(2024, 1, 8, 19, 45, 0, 0, time.UTC)},
		{Location: models.Location{Lat: 28.6155, Lng: 77.2095}, Type: "inappropriate_behavior", Severity: 3, Timestamp: time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC)},
	}
}

var recommendations = map[string][]string{
	RiskLevelHigh: {
		"Consider alternative route",
		"Travel with companion if possible",
		"Stay in well-lit areas",
		"Keep emergency contacts ready",
	},
	RiskLevelMedium: {
		"Stay alert and aware",
		"Avoid isolated areas",
		"Share location with trusted contacts",
	},
	RiskLevelLow: {
		"Normal precautions apply",
		"Stay aware of surroundings",
	},
}

// RiskService определяет контракт оценки опасности местности
type RiskService interface {
	GetLocationRisk(ctx context.Context, lat, lng float64, radiusMeters int) *models.RiskAssessment
}

type riskService struct {
	incidents []models.IncidentReport
	logger    *logrus.Logger
}

func NewRiskService(logger *logrus.Logger) RiskService {
	return newRiskService(DemoIncidents(), logger)
}

func newRiskService(incidents []models.IncidentReport, logger *logrus.Logger) *riskService {
	return &riskService{
		incidents: incidents,
		logger:    logger,
	}
}

// GetLocationRisk считает инциденты в квадрате ±0.01° вокруг точки.
// radiusMeters принимается, но в сравнении не участвует.
func (s *riskService) GetLocationRisk(ctx context.Context, lat, lng float64, radiusMeters int) *models.RiskAssessment {
	point := models.Location{Lat: lat, Lng: lng}

	nearby := make([]models.IncidentReport, 0)
	for _, incident := range s.incidents {
		if incident.Location.WithinBox(point, nearbyDelta) {
			nearby = append(nearby, incident)
		}
	}

	score := float64(len(nearby)) * riskPerIncident
	level := RiskLevel(score)

	s.logger.WithFields(logrus.Fields{
		"service":        "risk",
		"method":         "GetLocationRisk",
		"radius_meters":  radiusMeters,
		"incident_count": len(nearby),
		"risk_level":     level,
	}).Debug("Location risk evaluated")

	recent := nearby
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}

	return &models.RiskAssessment{
		Location:        point,
		RiskScore:       math.Min(score, 1.0),
		RiskLevel:       level,
		IncidentCount:   len(nearby),
		RecentIncidents: recent,
		Recommendations: Recommendations(level),
	}
}

// RiskLevel переводит счет в уровень: low < 0.3 <= medium < 0.7 <= high
func RiskLevel(score float64) string {
	switch {
	case score < 0.3:
		return RiskLevelLow
	case score < 0.7:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// Recommendations возвращает копию фиксированного списка советов для уровня
func Recommendations(level string) []string {
	list, ok := recommendations[level]
	if !ok {
		list = recommendations[RiskLevelLow]
	}
	return append([]string(nil), list...)
}
