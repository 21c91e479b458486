// Package config provides configuration management for the bet-brew application.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the calculation API server configuration
type ServerConfig struct {
	Port                   int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds     int      `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds    int      `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
	RateLimitPerSecond     float64  `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	RateLimitBurst         int      `mapstructure:"rate_limit_burst" validate:"required,gt=0"`
	AllowedOrigins         []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// OutputConfig controls how the CLI prints results
type OutputConfig struct {
	Format    string `mapstructure:"format" validate:"required,outputformat"`
	Precision int    `mapstructure:"precision" validate:"gte=0,lte=12"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ReadTimeout returns the server read timeout
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns how long in-flight requests get on shutdown
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}
