package classifier

import "github.com/shenikar/safeguard_backend/internal/models"

const (
	minShakePeaks     = 3
	shakeSOSIntensity = 0.7
)

// ShakeDetector определяет контракт анализа встряхивания
type ShakeDetector interface {
	Detect(pattern []float64, intensity float64) *models.ShakeDetection
}

// PatternShakeDetector - детерминированное правило: не меньше трех пиков и интенсивность выше 0.7
type PatternShakeDetector struct{}

func (PatternShakeDetector) Detect(pattern []float64, intensity float64) *models.ShakeDetection {
	return &models.ShakeDetection{
		Intensity: intensity,
		SOS:       len(pattern) >= minShakePeaks && intensity > shakeSOSIntensity,
	}
}
