// Package config provides configuration management for the bet-brew application.
package config

import (
	"strings"
	"testing"
)

const (
	validConfigPath              = "testdata/valid_config.yaml"
	expansionConfigPath          = "testdata/expansion_config.yaml"
	invalidConfigPath            = "testdata/invalid_config.yaml"
	malformedConfigPath          = "testdata/malformed_config.yaml"
	nonexistentConfigPath        = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingConfig = "expected no error loading config, got %v"
	expectedNoErrorMsg           = "expected no error, got %v"
	expectedNonNilConfig         = "expected non-nil config"
	betBrewName                  = "bet-brew"
	developmentEnv               = "development"
	invalidEnv                   = "invalid"
	testAppName                  = "test-app"
	expandedAppName              = "expanded-brew"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal(expectedNonNilConfig)
	}

	if cfg.App.Name != betBrewName {
		t.Errorf("expected app name '%s', got '%s'", betBrewName, cfg.App.Name)
	}

	if cfg.App.Environment != developmentEnv {
		t.Errorf("expected environment '%s', got '%s'", developmentEnv, cfg.App.Environment)
	}

	if cfg.Server.Port != 8085 {
		t.Errorf("expected server port 8085, got %d", cfg.Server.Port)
	}

	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 allowed origins, got %d", len(cfg.Server.AllowedOrigins))
	}

	if cfg.Output.Format != "json" || cfg.Output.Precision != 2 {
		t.Errorf("expected json output with precision 2, got %s/%d", cfg.Output.Format, cfg.Output.Precision)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigMalformed tests handling of unparseable YAML
func TestLoadConfigMalformed(t *testing.T) {
	_, err := Load(malformedConfigPath)
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}

	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	t.Setenv("BETBREW_APP_NAME", testAppName)
	t.Setenv("BETBREW_SERVER_PORT", "9191")

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != testAppName {
		t.Errorf("expected app name '%s' from environment, got '%s'", testAppName, cfg.App.Name)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("expected server port 9191 from environment, got %d", cfg.Server.Port)
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests ${VAR} expansion in the config file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	t.Setenv("BETBREW_TEST_APP_NAME", expandedAppName)

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.App.Name != expandedAppName {
		t.Errorf("expected app name '%s' from environment expansion, got '%s'", expandedAppName, cfg.App.Name)
	}

	// Keys absent from the file fall back to defaults
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default server port 8080, got %d", cfg.Server.Port)
	}
}

// TestLoadWithDefaultsMissingFile tests that defaults alone form a valid configuration
func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != betBrewName {
		t.Errorf("expected default app name '%s', got '%s'", betBrewName, cfg.App.Name)
	}

	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("expected default metrics path '/metrics', got '%s'", cfg.Metrics.Path)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	err = Validate(cfg)
	if err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = invalidEnv
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateInvalidFile tests that every custom rule reports its field
func TestValidateInvalidFile(t *testing.T) {
	cfg, err := Load(invalidConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid config")
	}

	for _, field := range []string{"Environment", "LogLevel", "Format"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected validation error to mention %s, got: %v", field, err)
		}
	}
}

// TestValidateMetricsPath tests the metrics path rule
func TestValidateMetricsPath(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Metrics.Path = "metrics"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for relative metrics path")
	}
}

// TestValidateCrossField tests cross-field constraints
func TestValidateCrossField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name: "shutdown shorter than write timeout",
			mutate: func(cfg *Config) {
				cfg.Server.ShutdownTimeoutSeconds = 1
			},
		},
		{
			name: "burst below rate",
			mutate: func(cfg *Config) {
				cfg.Server.RateLimitBurst = 1
			},
		},
		{
			name: "production allows every origin",
			mutate: func(cfg *Config) {
				cfg.App.Environment = "production"
				cfg.App.LogLevel = "info"
				cfg.Server.AllowedOrigins = []string{"*"}
			},
		},
		{
			name: "production at debug level",
			mutate: func(cfg *Config) {
				cfg.App.Environment = "production"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(validConfigPath)
			if err != nil {
				t.Fatalf(expectedNoErrorLoadingConfig, err)
			}

			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Fatal("expected cross-field validation error")
			}
		})
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: developmentEnv},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}

// TestServerTimeouts tests duration helpers
func TestServerTimeouts(t *testing.T) {
	s := ServerConfig{ReadTimeoutSeconds: 5, WriteTimeoutSeconds: 10, ShutdownTimeoutSeconds: 15}

	if s.ReadTimeout().Seconds() != 5 {
		t.Errorf("expected 5s read timeout, got %v", s.ReadTimeout())
	}
	if s.WriteTimeout().Seconds() != 10 {
		t.Errorf("expected 10s write timeout, got %v", s.WriteTimeout())
	}
	if s.ShutdownTimeout().Seconds() != 15 {
		t.Errorf("expected 15s shutdown timeout, got %v", s.ShutdownTimeout())
	}
}
