package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"helog/internal/constants"
)

// LoadConfig reads configuration from the optional YAML file and HELOG_* environment
// variables. An empty configFile means defaults plus environment only.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvVariables(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&cfg)

	if err := ValidateStatic(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("connection.handshake_timeout", constants.DefaultHandshakeTimeout)
	v.SetDefault("connection.read_buffer_size", constants.DefaultReadBufferSize)
	v.SetDefault("output.color", constants.ColorAuto)
	v.SetDefault("filtering.fallback.on_error", constants.FallbackDeny)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen", constants.DefaultMetricsListen)
}

func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("logging.level", "HELOG_LOGGING_LEVEL")
	v.BindEnv("logging.format", "HELOG_LOGGING_FORMAT")

	v.BindEnv("connection.handshake_timeout", "HELOG_CONNECTION_HANDSHAKE_TIMEOUT")
	v.BindEnv("connection.read_buffer_size", "HELOG_CONNECTION_READ_BUFFER_SIZE")

	v.BindEnv("output.color", "HELOG_OUTPUT_COLOR")

	v.BindEnv("filtering.fallback.on_error", "HELOG_FILTERING_FALLBACK_ON_ERROR")

	v.BindEnv("metrics.enabled", "HELOG_METRICS_ENABLED")
	v.BindEnv("metrics.listen", "HELOG_METRICS_LISTEN")
}

func normalize(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	cfg.Filtering.Fallback.OnError = strings.ToLower(strings.TrimSpace(cfg.Filtering.Fallback.OnError))
	cfg.Metrics.Listen = strings.TrimSpace(cfg.Metrics.Listen)
}
