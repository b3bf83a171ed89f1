package config

import (
	"fmt"

	"helog/internal/constants"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func ValidateStatic(cfg *Config) error {
	var errors []error

	if err := validateLogging(cfg.Logging); err != nil {
		errors = append(errors, err)
	}

	if err := validateConnection(cfg.Connection); err != nil {
		errors = append(errors, err)
	}

	if err := validateOutput(cfg.Output); err != nil {
		errors = append(errors, err)
	}

	if err := validateFiltering(cfg.Filtering); err != nil {
		errors = append(errors, err)
	}

	if err := validateMetrics(cfg.Metrics); err != nil {
		errors = append(errors, err)
	}

	if len(errors) == 1 {
		return errors[0]
	}
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

func validateLogging(cfg LoggingConfig) error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return &ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level: %s (valid: debug, info, warn, error)", cfg.Level),
		}
	}

	if cfg.Format != "json" && cfg.Format != "console" {
		return &ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format: %s (valid: json, console)", cfg.Format),
		}
	}

	return nil
}

func validateConnection(cfg ConnectionConfig) error {
	if cfg.HandshakeTimeout <= 0 {
		return &ValidationError{
			Field:   "connection.handshake_timeout",
			Message: "handshake timeout must be positive",
		}
	}

	if cfg.ReadBufferSize <= 0 {
		return &ValidationError{
			Field:   "connection.read_buffer_size",
			Message: fmt.Sprintf("read buffer size must be positive, got %d", cfg.ReadBufferSize),
		}
	}

	return nil
}

func validateOutput(cfg OutputConfig) error {
	switch cfg.Color {
	case constants.ColorAuto, constants.ColorAlways, constants.ColorNever:
		return nil
	default:
		return &ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf("invalid color mode: %s (valid: auto, always, never)", cfg.Color),
		}
	}
}

func validateFiltering(cfg FilteringConfig) error {
	switch cfg.Fallback.OnError {
	case constants.FallbackAllow, constants.FallbackDeny:
		return nil
	default:
		return &ValidationError{
			Field:   "filtering.fallback.on_error",
			Message: fmt.Sprintf("invalid on_error value: %s (valid: allow, deny)", cfg.Fallback.OnError),
		}
	}
}

func validateMetrics(cfg MetricsConfig) error {
	if cfg.Enabled && cfg.Listen == "" {
		return &ValidationError{
			Field:   "metrics.listen",
			Message: "listen address is required when metrics are enabled",
		}
	}
	return nil
}
