package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"upper case", "WARN", logrus.WarnLevel},
		{"invalid falls back to info", "loud", logrus.InfoLevel},
		{"empty falls back to info", "", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.level).GetLevel())
		})
	}
}

func TestNew_JSONOutputWithAppName(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", WithOutput(&buf), WithAppName("safeguard"))

	log.WithField("service", "emergency").Info("SOS alert stored")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "SOS alert stored", entry["msg"])
	assert.Equal(t, "safeguard", entry["app"])
	assert.Equal(t, "emergency", entry["service"])
}

func TestNew_AppNameNotOverwritten(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", WithOutput(&buf), WithAppName("safeguard"))

	log.WithField("app", "smoketest").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "smoketest", entry["app"])
}

func TestNew_DebugFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", WithOutput(&buf))

	log.Debug("hidden")

	assert.Empty(t, buf.String())
}
