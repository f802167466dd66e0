package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", nil).GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("warn", nil).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("loud", nil).GetLevel())
}

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)
	log.WithField("path", "/").Info("hello")
	log.Debug("hidden")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "path=/")
	assert.NotContains(t, buf.String(), "hidden")
}
