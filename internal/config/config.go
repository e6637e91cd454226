// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level host configuration for the lab server and
// the probe CLI. It is populated by merging values from the environment
// snapshot, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix:  prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:        direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds application-level settings such as the served version.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses, timeouts and the API rate limit.
	Server Server `envPrefix:"SERVER_"`

	// Log holds the log level and the optional log directory.
	Log Log `envPrefix:"LOG_"`

	// Probe holds settings for the probe CLI.
	Probe Probe `envPrefix:"PROBE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"0.1.0"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:3000"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// RateLimit is the number of API requests allowed per minute and client
	// IP. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT" envDefault:"600"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info"`

	// Dir, when set, makes the logger also append to <Dir>/app.log.
	// Env: LOG_DIR
	Dir string `env:"DIR"`
}

// Probe holds settings used by the probe CLI to reach a running server.
type Probe struct {
	// BaseURL is the root URL of the lab server.
	// Env: PROBE_BASE_URL
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000"`

	// RequestTimeout is the timeout for each probe request.
	// Env: PROBE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// GetStructuredConfig loads, merges, and validates the host configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment snapshot
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(snapshot Snapshot, args []string) (*StructuredConfig, error) {
	return newConfigBuilder(snapshot.Environ(), args).
		withEnv().
		withFlags().
		withJSON().
		build()
}
