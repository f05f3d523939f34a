package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/safeguard_backend/internal/classifier"
	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVoiceAnalyzer struct {
	res *models.VoiceDetection
	err error
}

func (s stubVoiceAnalyzer) Analyze(context.Context, []byte) (*models.VoiceDetection, error) {
	return s.res, s.err
}

type stubGestureDetector struct {
	confidence float64
}

func (s stubGestureDetector) Detect(gestureType string) *models.GestureDetection {
	return &models.GestureDetection{
		GestureType: gestureType,
		Confidence:  s.confidence,
		SOS:         classifier.IsSOSGesture(gestureType, s.confidence),
	}
}

func newTestDetectionService(voice classifier.VoiceAnalyzer) DetectionService {
	return NewDetectionService(voice, stubGestureDetector{confidence: 0.9}, classifier.PatternShakeDetector{}, newTestLogger())
}

func TestAnalyzeVoice_Success(t *testing.T) {
	expected := &models.VoiceDetection{
		Analysis:   models.VoiceAnalysis{Emotion: "fear", Confidence: 0.9, FearDetected: true, StressLevel: 0.5},
		TriggerSOS: true,
	}
	svc := newTestDetectionService(stubVoiceAnalyzer{res: expected})

	res, err := svc.AnalyzeVoice(context.Background(), []byte("RIFF"))

	require.NoError(t, err)
	assert.Equal(t, expected, res)
}

func TestAnalyzeVoice_Error(t *testing.T) {
	svc := newTestDetectionService(stubVoiceAnalyzer{err: context.DeadlineExceeded})

	res, err := svc.AnalyzeVoice(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "voice analysis failed")
}

func TestDetectGesture(t *testing.T) {
	svc := newTestDetectionService(stubVoiceAnalyzer{})

	assert.True(t, svc.DetectGesture(context.Background(), "help_gesture").SOS)
	assert.False(t, svc.DetectGesture(context.Background(), "thumbs_up").SOS)
}

func TestDetectShake(t *testing.T) {
	svc := newTestDetectionService(stubVoiceAnalyzer{})

	res := svc.DetectShake(context.Background(), []float64{1, 2, 3}, 0.9)
	assert.True(t, res.SOS)
	assert.Equal(t, 0.9, res.Intensity)

	assert.False(t, svc.DetectShake(context.Background(), []float64{1, 2}, 0.9).SOS)
}
