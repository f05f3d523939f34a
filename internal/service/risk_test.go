package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestGetLocationRisk_DemoHotspot(t *testing.T) {
	svc := NewRiskService(newTestLogger())

	risk := svc.GetLocationRisk(context.Background(), 28.6139, 77.2090, 1000)

	assert.Equal(t, 4, risk.IncidentCount)
	assert.InDelta(t, 0.8, risk.RiskScore, 1e-9)
	assert.Equal(t, RiskLevelHigh, risk.RiskLevel)
	assert.Len(t, risk.RecentIncidents, 3)
	assert.Equal(t, "harassment", risk.RecentIncidents[0].Type)
	assert.Equal(t, models.Location{Lat: 28.6139, Lng: 77.2090}, risk.Location)
	assert.Contains(t, risk.Recommendations, "Consider alternative route")
}

func TestGetLocationRisk_NoIncidents(t *testing.T) {
	svc := NewRiskService(newTestLogger())

	risk := svc.GetLocationRisk(context.Background(), 51.5074, -0.1278, 1000)

	assert.Equal(t, 0, risk.IncidentCount)
	assert.Zero(t, risk.RiskScore)
	assert.Equal(t, RiskLevelLow, risk.RiskLevel)
	assert.NotNil(t, risk.RecentIncidents)
	assert.Empty(t, risk.RecentIncidents)
	assert.Equal(t, []string{"Normal precautions apply", "Stay aware of surroundings"}, risk.Recommendations)
}

func TestGetLocationRisk_ScoreIsClamped(t *testing.T) {
	incidents := make([]models.IncidentReport, 0, 7)
	for i := 0; i < 7; i++ {
		incidents = append(incidents, models.IncidentReport{Location: models.Location{Lat: 10, Lng: 10}, Type: "stalking"})
	}
	svc := newRiskService(incidents, newTestLogger())

	risk := svc.GetLocationRisk(context.Background(), 10, 10, 0)

	assert.Equal(t, 7, risk.IncidentCount)
	assert.Equal(t, 1.0, risk.RiskScore)
	assert.Len(t, risk.RecentIncidents, 3)
}

func TestGetLocationRisk_RadiusIsIgnored(t *testing.T) {
	svc := NewRiskService(newTestLogger())

	small := svc.GetLocationRisk(context.Background(), 28.6139, 77.2090, 1)
	large := svc.GetLocationRisk(context.Background(), 28.6139, 77.2090, 50000)

	assert.Equal(t, small.IncidentCount, large.IncidentCount)
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0, RiskLevelLow},
		{0.2, RiskLevelLow},
		{0.3, RiskLevelMedium},
		{0.6, RiskLevelMedium},
		{0.7, RiskLevelHigh},
		{1, RiskLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RiskLevel(tt.score), "score %v", tt.score)
	}
}

func TestRecommendations_ReturnsCopy(t *testing.T) {
	list := Recommendations(RiskLevelMedium)
	list[0] = "changed"

	assert.Equal(t, "Stay alert and aware", Recommendations(RiskLevelMedium)[0])
	assert.Len(t, Recommendations("unknown"), 2)
}
