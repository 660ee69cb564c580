package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitypulse/internal/config"
)

func TestNewLogger_Console(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Output: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pulse.log")
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Info("written to file", "key", "value")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"written to file"`)
	assert.Contains(t, string(content), `"key":"value"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "debug", want: "DEBUG"},
		{in: "info", want: "INFO"},
		{in: "warn", want: "WARN"},
		{in: "warning", want: "WARN"},
		{in: "error", want: "ERROR"},
		{in: "bogus", want: "INFO"},
		{in: "", want: "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in).Level().String())
		})
	}
}
