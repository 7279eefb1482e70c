package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown")
	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, `"run"`)

	buf.Reset()
	logger = NewLogger(&buf, true)
	logger.Debug("hidden no more")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "hidden no more")
}
