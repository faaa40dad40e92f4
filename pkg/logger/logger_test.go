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
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"ERROR", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			log := New(tt.input)
			assert.Equal(t, tt.expected, log.GetLevel())
			assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
		})
	}
}

func TestNewLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("info", &buf)

	log.WithFields(logrus.Fields{"service": "outage", "method": "FindNearby"}).Info("Nearby outage search completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, AppName, entry["app"])
	assert.Equal(t, "outage", entry["service"])
	assert.Equal(t, "FindNearby", entry["method"])
	assert.Equal(t, "Nearby outage search completed", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewLogger_CallFieldWins(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("info", &buf)

	log.WithField("app", "migrator").Info("override")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "migrator", entry["app"])
}

func TestNewLogger_BelowLevelIsDropped(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("warn", &buf)

	log.Info("hidden")

	assert.Empty(t, buf.String())
}
