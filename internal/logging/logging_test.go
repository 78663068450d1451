package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging_Levels(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelInfo)

	SetLevel(LevelWarn)
	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)
	Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(out, "hidden")
	assert.Contains(out, "[WARN] shown 3")
	assert.Contains(out, "[ERROR] shown 4")

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("trace")
	assert.Contains(buf.String(), "[DEBUG] trace")

	buf.Reset()
	SetLevel("invalid")
	Debug("everything")
	assert.Contains(buf.String(), "everything")
}

func TestLogging_ValidLevel(t *testing.T) {
	assert := assert.New(t)

	for _, l := range []string{"debug", "info", "warn", "error"} {
		assert.True(ValidLevel(l), l)
	}
	assert.False(ValidLevel("verbose"))
}
