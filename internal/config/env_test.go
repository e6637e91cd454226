// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_GRPC_ADDRESS":     "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":  "45s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",
		"SERVER_RATE_LIMIT":       "120",

		"LOG_LEVEL": "debug",
		"LOG_DIR":   "/var/log/lab",

		"PROBE_BASE_URL":        "http://lab:3000",
		"PROBE_REQUEST_TIMEOUT": "2s",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 120, cfg.Server.RateLimit)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/lab", cfg.Log.Dir)

	assert.Equal(t, "http://lab:3000", cfg.Probe.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Probe.RequestTimeout)
}

func TestParseEnv_EmptyEnvUsesDefaults(t *testing.T) {
	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Empty(t, cfg.Log.Dir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_ZeroRateLimitDisables(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, map[string]string{"SERVER_RATE_LIMIT": "0"}))

	assert.Zero(t, cfg.Server.RateLimit)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{"SERVER_REQUEST_TIMEOUT": "invalid_duration"})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg, map[string]string{"SERVER_REQUEST_TIMEOUT": tt.envValue})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}
