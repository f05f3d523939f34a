package classifier

import (
	"context"
	"time"

	"github.com/shenikar/safeguard_backend/internal/models"
)

var emotions = []string{"calm", "fear", "stress", "neutral", "anxiety"}

const voiceSOSConfidence = 0.75

// VoiceAnalyzer определяет контракт анализа эмоций по аудиозаписи
type VoiceAnalyzer interface {
	Analyze(ctx context.Context, audio []byte) (*models.VoiceDetection, error)
}

// MockVoiceAnalyzer игнорирует содержимое аудио и выбирает эмоцию случайно
// после искусственной задержки.
type MockVoiceAnalyzer struct {
	rnd   Random
	delay time.Duration
}

func NewMockVoiceAnalyzer(rnd Random, delay time.Duration) *MockVoiceAnalyzer {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	return &MockVoiceAnalyzer{rnd: rnd, delay: delay}
}

// Analyze имитирует обработку и возвращает случайный результат
func (a *MockVoiceAnalyzer) Analyze(ctx context.Context, _ []byte) (*models.VoiceDetection, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	emotion := emotions[a.rnd.IntN(len(emotions))]
	fear := isFearEmotion(emotion)
	confidence := uniform(a.rnd, 0.7, 0.95)

	var stress float64
	if fear {
		stress = uniform(a.rnd, 0.3, 0.9)
	} else {
		stress = uniform(a.rnd, 0.1, 0.4)
	}

	return &models.VoiceDetection{
		Analysis: models.VoiceAnalysis{
			Emotion:      emotion,
			Confidence:   confidence,
			FearDetected: fear,
			StressLevel:  stress,
		},
		TriggerSOS: fear && confidence > voiceSOSConfidence,
	}, nil
}

func isFearEmotion(emotion string) bool {
	switch emotion {
	case "fear", "stress", "anxiety":
		return true
	}
	return false
}
