package config

import (
	"time"
)

type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Connection ConnectionConfig `mapstructure:"connection"`
	Output     OutputConfig     `mapstructure:"output"`
	Filtering  FilteringConfig  `mapstructure:"filtering"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ConnectionConfig struct {
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
	ReadBufferSize   int           `mapstructure:"read_buffer_size"`
}

type OutputConfig struct {
	Color string `mapstructure:"color"` // "auto", "always", "never"
}

type FilteringConfig struct {
	Fallback FallbackConfig `mapstructure:"fallback"`
}

type FallbackConfig struct {
	OnError string `mapstructure:"on_error"` // "allow", "deny" (default: "deny")
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

func Load(configFile string) (*Config, error) {
	return LoadConfig(configFile)
}
