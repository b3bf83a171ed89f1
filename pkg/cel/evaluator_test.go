package cel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helog/pkg/models"
)

func TestNewEvaluator(t *testing.T) {
	eval, err := NewEvaluator()
	require.NoError(t, err)
	assert.NotNil(t, eval)
}

func TestCompileFilter(t *testing.T) {
	eval, err := NewEvaluator()
	require.NoError(t, err)

	tests := []struct {
		name      string
		expr      string
		wantError bool
	}{
		{
			name:      "valid bool expression",
			expr:      `record.value == "on"`,
			wantError: false,
		},
		{
			name:      "stream variable",
			expr:      `stream == "events"`,
			wantError: false,
		},
		{
			name:      "non-bool expression",
			expr:      `record.value`,
			wantError: true,
		},
		{
			name:      "invalid expression",
			expr:      `invalid syntax here!!!`,
			wantError: true,
		},
		{
			name:      "undefined variable",
			expr:      `payload.status == "active"`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := eval.CompileFilter(tt.expr)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, filter)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expr, filter.Expression())
			}
		})
	}
}

func TestFilterExpressionExamplesCompile(t *testing.T) {
	eval, err := NewEvaluator()
	require.NoError(t, err)

	for name, expr := range FilterExpressionExamples {
		t.Run(name, func(t *testing.T) {
			_, err := eval.CompileFilter(expr)
			assert.NoError(t, err)
		})
	}
}

func TestFilterEvaluate(t *testing.T) {
	eval, err := NewEvaluator()
	require.NoError(t, err)

	event := &models.EventRecord{
		Source:      "DEVICE",
		Name:        "temperature",
		DisplayName: "Porch",
		Value:       "27.5",
		DeviceID:    "12",
	}
	logEntry := &models.LogRecord{
		Name:  "Porch",
		Msg:   "sensor error: timeout",
		Type:  "dev",
		Level: "warn",
	}

	tests := []struct {
		name    string
		expr    string
		stream  string
		record  models.Record
		want    bool
		wantErr bool
	}{
		{
			name:   "equality match",
			expr:   `record.displayName == "Porch"`,
			stream: "events",
			record: event,
			want:   true,
		},
		{
			name:   "numeric threshold",
			expr:   `double(record.value) > 25.0`,
			stream: "events",
			record: event,
			want:   true,
		},
		{
			name:   "stream mismatch",
			expr:   `stream == "log"`,
			stream: "events",
			record: event,
			want:   false,
		},
		{
			name:   "log message contains",
			expr:   `record.msg.contains("error") && record.level in ["warn", "error"]`,
			stream: "log",
			record: logEntry,
			want:   true,
		},
		{
			name:    "missing key",
			expr:    `record.value == "on"`,
			stream:  "log",
			record:  logEntry,
			wantErr: true,
		},
		{
			name:    "bad conversion",
			expr:    `double(record.msg) > 1.0`,
			stream:  "log",
			record:  logEntry,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := eval.CompileFilter(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, filter.Expression())

			got, err := filter.Evaluate(context.Background(), tt.stream, tt.record)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
