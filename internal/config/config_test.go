package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helog/internal/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 45*time.Second, cfg.Connection.HandshakeTimeout)
	assert.Equal(t, 4096, cfg.Connection.ReadBufferSize)
	assert.Equal(t, constants.ColorAuto, cfg.Output.Color)
	assert.Equal(t, constants.FallbackDeny, cfg.Filtering.Fallback.OnError)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9464", cfg.Metrics.Listen)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: DEBUG
  format: console
connection:
  handshake_timeout: 5s
  read_buffer_size: 1024
output:
  color: never
filtering:
  fallback:
    on_error: allow
metrics:
  enabled: true
  listen: ":9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 5*time.Second, cfg.Connection.HandshakeTimeout)
	assert.Equal(t, 1024, cfg.Connection.ReadBufferSize)
	assert.Equal(t, constants.ColorNever, cfg.Output.Color)
	assert.Equal(t, constants.FallbackAllow, cfg.Filtering.Fallback.OnError)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9000", cfg.Metrics.Listen)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output:\n  color: never\n")
	t.Setenv("HELOG_OUTPUT_COLOR", "always")
	t.Setenv("HELOG_CONNECTION_READ_BUFFER_SIZE", "512")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, constants.ColorAlways, cfg.Output.Color)
	assert.Equal(t, 512, cfg.Connection.ReadBufferSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{name: "level", yaml: "logging:\n  level: verbose\n", field: "logging.level"},
		{name: "format", yaml: "logging:\n  format: xml\n", field: "logging.format"},
		{name: "timeout", yaml: "connection:\n  handshake_timeout: 0s\n", field: "connection.handshake_timeout"},
		{name: "buffer", yaml: "connection:\n  read_buffer_size: -1\n", field: "connection.read_buffer_size"},
		{name: "color", yaml: "output:\n  color: sometimes\n", field: "output.color"},
		{name: "fallback", yaml: "filtering:\n  fallback:\n    on_error: retry\n", field: "filtering.fallback.on_error"},
		{name: "metrics listen", yaml: "metrics:\n  enabled: true\n  listen: \"\"\n", field: "metrics.listen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateStaticAggregates(t *testing.T) {
	cfg := &Config{
		Logging:    LoggingConfig{Level: "loud", Format: "json"},
		Connection: ConnectionConfig{HandshakeTimeout: time.Second, ReadBufferSize: 1},
		Output:     OutputConfig{Color: "plaid"},
		Filtering:  FilteringConfig{Fallback: FallbackConfig{OnError: constants.FallbackDeny}},
	}

	err := ValidateStatic(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "output.color")
}
