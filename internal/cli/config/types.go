// Package config loads polysolve CLI and server settings from defaults, a
// YAML file, POLYSOLVE_* environment variables and command-line flags.
package config

import (
	"context"
	"time"
)

// Output formats understood by the solve command.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Defaults.
const (
	DefaultOutput       = OutputText
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 1 << 20 // 1 MiB
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	EnvPrefix           = "POLYSOLVE_"
)

// Config holds all CLI configuration options.
type Config struct {
	Output    string       `koanf:"output"`
	Color     bool         `koanf:"color"`
	Verbose   bool         `koanf:"verbose"`
	LogLevel  string       `koanf:"log_level"`
	LogFormat string       `koanf:"log_format"`
	Server    ServerConfig `koanf:"server"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// ServerConfig holds settings for the HTTP tool server.
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		Color:     true,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Server: ServerConfig{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
	}
}

type configKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or Default().
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok && c != nil {
		return c
	}
	return Default()
}
