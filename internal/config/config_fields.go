// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Field names shared by the flag, JSON and env sources. They match the JSON
// config file keys.
const (
	fieldAppVersion            = "app.version"
	fieldServerHTTPAddress     = "server.http_address"
	fieldServerGRPCAddress     = "server.grpc_address"
	fieldServerRequestTimeout  = "server.request_timeout"
	fieldServerShutdownTimeout = "server.shutdown_timeout"
	fieldServerRateLimit       = "server.rate_limit"
	fieldLogLevel              = "log.level"
	fieldLogDir                = "log.dir"
	fieldProbeBaseURL          = "probe.base_url"
	fieldProbeRequestTimeout   = "probe.request_timeout"
)

var fieldCopiers = map[string]func(dst, src *StructuredConfig){
	fieldAppVersion:            func(dst, src *StructuredConfig) { dst.App.Version = src.App.Version },
	fieldServerHTTPAddress:     func(dst, src *StructuredConfig) { dst.Server.HTTPAddress = src.Server.HTTPAddress },
	fieldServerGRPCAddress:     func(dst, src *StructuredConfig) { dst.Server.GRPCAddress = src.Server.GRPCAddress },
	fieldServerRequestTimeout:  func(dst, src *StructuredConfig) { dst.Server.RequestTimeout = src.Server.RequestTimeout },
	fieldServerShutdownTimeout: func(dst, src *StructuredConfig) { dst.Server.ShutdownTimeout = src.Server.ShutdownTimeout },
	fieldServerRateLimit:       func(dst, src *StructuredConfig) { dst.Server.RateLimit = src.Server.RateLimit },
	fieldLogLevel:              func(dst, src *StructuredConfig) { dst.Log.Level = src.Log.Level },
	fieldLogDir:                func(dst, src *StructuredConfig) { dst.Log.Dir = src.Log.Dir },
	fieldProbeBaseURL:          func(dst, src *StructuredConfig) { dst.Probe.BaseURL = src.Probe.BaseURL },
	fieldProbeRequestTimeout:   func(dst, src *StructuredConfig) { dst.Probe.RequestTimeout = src.Probe.RequestTimeout },
}

// flagFields maps flag names to the field they set.
var flagFields = map[string]string{
	"a":                fieldServerHTTPAddress,
	"grpc-address":     fieldServerGRPCAddress,
	"version-tag":      fieldAppVersion,
	"request-timeout":  fieldServerRequestTimeout,
	"shutdown-timeout": fieldServerShutdownTimeout,
	"rate-limit":       fieldServerRateLimit,
	"log-level":        fieldLogLevel,
	"log-dir":          fieldLogDir,
	"base-url":         fieldProbeBaseURL,
	"probe-timeout":    fieldProbeRequestTimeout,
}

// clearableEnv lists variables that disable their feature when set to an
// empty value instead of falling back to the default.
var clearableEnv = map[string]string{
	"SERVER_ADDRESS":      fieldServerHTTPAddress,
	"SERVER_GRPC_ADDRESS": fieldServerGRPCAddress,
	"LOG_DIR":             fieldLogDir,
}

func copyField(field string, dst, src *StructuredConfig) {
	if copier, ok := fieldCopiers[field]; ok {
		copier(dst, src)
	}
}

// clearEmptyEnv zeroes the fields of cfg whose clearable variable is present
// but empty and returns their names.
func clearEmptyEnv(cfg *StructuredConfig, environ map[string]string) []string {
	var cleared []string
	for key, field := range clearableEnv {
		if value, ok := environ[key]; ok && value == "" {
			copyField(field, cfg, &StructuredConfig{})
			cleared = append(cleared, field)
		}
	}
	return cleared
}
