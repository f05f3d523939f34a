package service

import (
	"context"
	"fmt"

	"github.com/shenikar/safeguard_backend/internal/classifier"
	"github.com/shenikar/safeguard_backend/internal/metrics"
	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
)

// DetectionService определяет контракт детекторов опасности
type DetectionService interface {
	AnalyzeVoice(ctx context.Context, audio []byte) (*models.VoiceDetection, error)
	DetectGesture(ctx context.Context, gestureType string) *models.GestureDetection
	DetectShake(ctx context.Context, pattern []float64, intensity float64) *models.ShakeDetection
}

type detectionService struct {
	voice   classifier.VoiceAnalyzer
	gesture classifier.GestureDetector
	shake   classifier.ShakeDetector
	logger  *logrus.Logger
}

func NewDetectionService(
	voice classifier.VoiceAnalyzer,
	gesture classifier.GestureDetector,
	shake classifier.ShakeDetector,
	logger *logrus.Logger,
) DetectionService {
	return &detectionService{
		voice:   voice,
		gesture: gesture,
		shake:   shake,
		logger:  logger,
	}
}

// AnalyzeVoice прогоняет аудио через анализатор эмоций
func (s *detectionService) AnalyzeVoice(ctx context.Context, audio []byte) (*models.VoiceDetection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "detection",
		"method":     "AnalyzeVoice",
		"audio_size": len(audio),
	})
	log.Info("Analyzing voice sample")

	res, err := s.voice.Analyze(ctx, audio)
	if err != nil {
		log.WithError(err).Error("Voice analysis failed")
		return nil, fmt.Errorf("service: voice analysis failed: %w", err)
	}

	metrics.RecordDetection("voice", res.TriggerSOS)
	log.WithFields(logrus.Fields{
		"emotion":     res.Analysis.Emotion,
		"trigger_sos": res.TriggerSOS,
	}).Info("Voice analysis completed")
	return res, nil
}

// DetectGesture классифицирует жест
func (s *detectionService) DetectGesture(ctx context.Context, gestureType string) *models.GestureDetection {
	res := s.gesture.Detect(gestureType)
	metrics.RecordDetection("gesture", res.SOS)
	s.logger.WithFields(logrus.Fields{
		"service":       "detection",
		"method":        "DetectGesture",
		"gesture":       res.GestureType,
		"sos_triggered": res.SOS,
	}).Info("Gesture processed")
	return res
}

// DetectShake проверяет паттерн встряхивания
func (s *detectionService) DetectShake(ctx context.Context, pattern []float64, intensity float64) *models.ShakeDetection {
	res := s.shake.Detect(pattern, intensity)
	metrics.RecordDetection("shake", res.SOS)
	s.logger.WithFields(logrus.Fields{
		"service":       "detection",
		"method":        "DetectShake",
		"peaks":         len(pattern),
		"sos_triggered": res.SOS,
	}).Info("Shake pattern processed")
	return res
}
