package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maastricht-university/word-der/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.Log{Level: "debug", Format: "json"}, &buf)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.WithField("rows", 2).Debug("aligned")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "aligned", entry["msg"])
	assert.Equal(t, float64(2), entry["rows"])
}

func TestNewTextFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.Log{Level: "nonsense"}, &buf)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "level=warning msg=shown")
}
