// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics provides Prometheus collectors for the lab server.
//
// Labels are bounded: routes are chi route patterns, never raw paths.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "unified_ai_lab"

// Server configuration check results.
const (
	ConfigResultOK               = "ok"
	ConfigResultContextViolation = "context_violation"
	ConfigResultMissingValue     = "missing_value"
	ConfigResultError            = "error"
)

// UnmatchedRoute labels requests that did not match any registered route.
const UnmatchedRoute = "unmatched"

var (
	// HTTPRequestsTotal counts served requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by route, method and status code.",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration observes request latency by route and method.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds, by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// RateLimitExceededTotal counts API requests rejected by the rate limiter.
	RateLimitExceededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratelimit_exceeded_total",
		Help:      "Total number of API requests rejected by the rate limiter.",
	})

	// ServerConfigChecksTotal counts server configuration resolutions by result.
	ServerConfigChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "server_config_checks_total",
		Help:      "Total number of server configuration resolutions, by result.",
	}, []string{"result"})
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = UnmatchedRoute
	}
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordRateLimitExceeded records one rejected API request.
func RecordRateLimitExceeded() {
	RateLimitExceededTotal.Inc()
}

// RecordServerConfigCheck records the outcome of a server configuration
// resolution and returns the result label it used.
func RecordServerConfigCheck(err error) string {
	result := ServerConfigResult(err)
	ServerConfigChecksTotal.WithLabelValues(result).Inc()
	return result
}

// ServerConfigResult maps a server configuration error to a result label.
func ServerConfigResult(err error) string {
	switch {
	case err == nil:
		return ConfigResultOK
	case errors.Is(err, config.ErrContextViolation):
		return ConfigResultContextViolation
	case errors.Is(err, config.ErrMissingRequiredValue):
		return ConfigResultMissingValue
	default:
		return ConfigResultError
	}
}
