package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"helog/pkg/logging"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(tt.level, "console")
			require.NoError(t, err)

			sugared, ok := log.(*SugaredLogger)
			require.True(t, ok)
			assert.True(t, sugared.Desugar().Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, sugared.Desugar().Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestCtxMethodsAddContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &SugaredLogger{SugaredLogger: zap.New(core).Sugar()}

	ctx := logging.WithStream(logging.WithSessionID(context.Background(), "s-1"), "log")
	log.WarnwCtx(ctx, "Stream ended", "code", "TRANSPORT_ERROR")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Stream ended", entries[0].Message)
	assert.Equal(t, map[string]interface{}{
		"session_id": "s-1",
		"stream":     "log",
		"code":       "TRANSPORT_ERROR",
	}, entries[0].ContextMap())
}

func TestNopLogger(t *testing.T) {
	log := NopLogger()
	log.ErrorwCtx(context.Background(), "ignored")
	assert.NoError(t, log.Sync())
}
