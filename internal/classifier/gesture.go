package classifier

import "github.com/shenikar/safeguard_backend/internal/models"

const (
	unknownGesture       = "unknown"
	gestureSOSConfidence = 0.8
)

var sosGestures = map[string]struct{}{
	"peace_sign":   {},
	"open_palm":    {},
	"help_gesture": {},
}

// GestureDetector определяет контракт распознавания жестов
type GestureDetector interface {
	Detect(gestureType string) *models.GestureDetection
}

type MockGestureDetector struct {
	rnd Random
}

func NewMockGestureDetector(rnd Random) *MockGestureDetector {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	return &MockGestureDetector{rnd: rnd}
}

// Detect - SOS, если жест из списка экстренных и уверенность выше 0.8
func (d *MockGestureDetector) Detect(gestureType string) *models.GestureDetection {
	if gestureType == "" {
		gestureType = unknownGesture
	}
	confidence := uniform(d.rnd, 0.6, 0.95)
	return &models.GestureDetection{
		GestureType: gestureType,
		Confidence:  confidence,
		SOS:         IsSOSGesture(gestureType, confidence),
	}
}

// IsSOSGesture - решающее правило для жестов
func IsSOSGesture(gestureType string, confidence float64) bool {
	_, ok := sosGestures[gestureType]
	return ok && confidence > gestureSOSConfidence
}
