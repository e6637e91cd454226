// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route paths.
const (
	HomePath    = "/"
	IconPath    = "/icon.png"
	HealthPath  = "/api/health"
	VersionPath = "/api/version"
	ConfigPath  = "/api/config"
	MetricsPath = "/metrics"
)

const rateLimitWindow = time.Minute

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID)
	router.Use(withMetrics)
	router.Use(withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// browser-facing routes
	router.Group(func(r chi.Router) {
		r.Use(withClientScope)

		r.With(withGZip).Get(HomePath, h.homePage)
		r.Get(IconPath, h.icon)
	})

	// API
	router.Group(func(r chi.Router) {
		r.Use(withClientScope)
		if h.cfg.RateLimit > 0 {
			r.Use(withRateLimit(h.cfg.RateLimit, rateLimitWindow))
		}
		r.Use(withGZip)

		r.Get(HealthPath, h.health)
		r.Get(VersionPath, h.version)
		r.Get(ConfigPath, h.clientConfig)
	})

	router.Method(http.MethodGet, MetricsPath, promhttp.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
