package classifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRandom отдает заранее заданные значения по порядку
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (s *scriptedRandom) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRandom) IntN(int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func TestMockVoiceAnalyzer_FearAboveThreshold(t *testing.T) {
	// emotion index 1 = fear, confidence = 0.7 + 0.25*0.8 = 0.9, stress = 0.3 + 0.6*0.5 = 0.6
	rnd := &scriptedRandom{ints: []int{1}, floats: []float64{0.8, 0.5}}
	analyzer := NewMockVoiceAnalyzer(rnd, 0)

	res, err := analyzer.Analyze(context.Background(), []byte("audio"))

	require.NoError(t, err)
	assert.Equal(t, "fear", res.Analysis.Emotion)
	assert.True(t, res.Analysis.FearDetected)
	assert.InDelta(t, 0.9, res.Analysis.Confidence, 1e-9)
	assert.InDelta(t, 0.6, res.Analysis.StressLevel, 1e-9)
	assert.True(t, res.TriggerSOS)
}

func TestMockVoiceAnalyzer_FearBelowThreshold(t *testing.T) {
	// anxiety, confidence = 0.7 + 0.25*0.1 = 0.725
	rnd := &scriptedRandom{ints: []int{4}, floats: []float64{0.1, 0.0}}
	analyzer := NewMockVoiceAnalyzer(rnd, 0)

	res, err := analyzer.Analyze(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, res.Analysis.FearDetected)
	assert.False(t, res.TriggerSOS)
	assert.InDelta(t, 0.3, res.Analysis.StressLevel, 1e-9)
}

func TestMockVoiceAnalyzer_Calm(t *testing.T) {
	rnd := &scriptedRandom{ints: []int{0}, floats: []float64{0.99, 1.0}}
	analyzer := NewMockVoiceAnalyzer(rnd, 0)

	res, err := analyzer.Analyze(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "calm", res.Analysis.Emotion)
	assert.False(t, res.Analysis.FearDetected)
	assert.False(t, res.TriggerSOS)
	assert.InDelta(t, 0.4, res.Analysis.StressLevel, 1e-9)
}

func TestMockVoiceAnalyzer_RangesWithSeededSource(t *testing.T) {
	analyzer := NewMockVoiceAnalyzer(NewSeeded(42), 0)

	for i := 0; i < 200; i++ {
		res, err := analyzer.Analyze(context.Background(), nil)
		require.NoError(t, err)

		a := res.Analysis
		assert.Contains(t, emotions, a.Emotion)
		assert.GreaterOrEqual(t, a.Confidence, 0.7)
		assert.Less(t, a.Confidence, 0.95)
		if a.FearDetected {
			assert.GreaterOrEqual(t, a.StressLevel, 0.3)
			assert.Less(t, a.StressLevel, 0.9)
		} else {
			assert.GreaterOrEqual(t, a.StressLevel, 0.1)
			assert.Less(t, a.StressLevel, 0.4)
		}
		assert.Equal(t, a.FearDetected && a.Confidence > 0.75, res.TriggerSOS)
	}
}

func TestMockVoiceAnalyzer_ContextCanceled(t *testing.T) {
	analyzer := NewMockVoiceAnalyzer(NewSeeded(1), time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := analyzer.Analyze(ctx, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestMockGestureDetector(t *testing.T) {
	tests := []struct {
		name     string
		gesture  string
		draw     float64
		wantType string
		wantSOS  bool
	}{
		{name: "recognized high confidence", gesture: "peace_sign", draw: 0.9, wantType: "peace_sign", wantSOS: true},
		{name: "recognized low confidence", gesture: "open_palm", draw: 0.1, wantType: "open_palm", wantSOS: false},
		{name: "unrecognized gesture", gesture: "thumbs_up", draw: 0.99, wantType: "thumbs_up", wantSOS: false},
		{name: "empty type becomes unknown", gesture: "", draw: 0.99, wantType: "unknown", wantSOS: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewMockGestureDetector(&scriptedRandom{floats: []float64{tt.draw}})

			res := detector.Detect(tt.gesture)

			assert.Equal(t, tt.wantType, res.GestureType)
			assert.Equal(t, tt.wantSOS, res.SOS)
			assert.InDelta(t, 0.6+0.35*tt.draw, res.Confidence, 1e-9)
		})
	}
}

func TestIsSOSGesture_Boundary(t *testing.T) {
	assert.False(t, IsSOSGesture("help_gesture", 0.8))
	assert.True(t, IsSOSGesture("help_gesture", 0.8000001))
	assert.False(t, IsSOSGesture("wave", 0.95))
}

func TestPatternShakeDetector(t *testing.T) {
	detector := PatternShakeDetector{}

	assert.True(t, detector.Detect([]float64{0.8, 0.9, 0.85}, 0.8).SOS)
	assert.False(t, detector.Detect([]float64{0.8, 0.9}, 0.9).SOS)
	assert.False(t, detector.Detect([]float64{0.8, 0.9, 0.85}, 0.7).SOS)

	res := detector.Detect(nil, 0.3)
	assert.False(t, res.SOS)
	assert.Equal(t, 0.3, res.Intensity)
}
