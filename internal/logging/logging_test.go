package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		format        string
		expectedLevel logrus.Level
		expectJSON    bool
	}{
		{
			name:          "defaults",
			level:         "info",
			format:        "text",
			expectedLevel: logrus.InfoLevel,
		},
		{
			name:          "debug level with json format",
			level:         "debug",
			format:        "json",
			expectedLevel: logrus.DebugLevel,
			expectJSON:    true,
		},
		{
			name:          "invalid level defaults to info",
			level:         "chatty",
			format:        "",
			expectedLevel: logrus.InfoLevel,
		},
		{
			name:          "case insensitive",
			level:         "WARN",
			format:        "JSON",
			expectedLevel: logrus.WarnLevel,
			expectJSON:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, tt.format, &buf)

			assert.Equal(t, tt.expectedLevel, log.GetLevel())

			if tt.expectJSON {
				assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
			}
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)

	log.WithField("player_id", "p-1").Info("report computed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report computed", entry["msg"])
	assert.Equal(t, "p-1", entry["player_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	New("verbose", "text", &buf)

	out := buf.String()
	assert.True(t, strings.Contains(out, "Invalid log level"), "output: %s", out)
	assert.Contains(t, out, "invalid_level=verbose")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "text", &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "motorprep.log")

	f, err := OpenFile(path)
	require.NoError(t, err)

	log := New("info", "text", f)
	log.Info("first")
	require.NoError(t, f.Close())

	f, err = OpenFile(path)
	require.NoError(t, err)
	New("info", "text", f).Info("second")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}
