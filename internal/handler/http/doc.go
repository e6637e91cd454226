// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the lab server.
//
// It exposes the landing page, the generated icon, a small JSON API
// (health, version and client configuration) and the Prometheus endpoint.
// Cross-cutting concerns such as request tracing, access logging, metrics,
// rate limiting and response compression are handled here before requests
// reach the service layer.
//
// Every browser-facing route runs in [config.ScopeUntrusted]: nothing served
// from this package can resolve server-only configuration.
package http
