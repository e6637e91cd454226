// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to a
// running lab server.
//
// The primary abstraction is [ServerAdapter], which decouples the probe CLI
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrTooManyRequests] for 429, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/unified-ai-lab/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic read access to the lab server's
// public API. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// Health fetches GET /api/health.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Version fetches GET /api/version.
	Version(ctx context.Context) (models.VersionInfo, error)

	// ClientConfig fetches GET /api/config, the client-visible configuration.
	ClientConfig(ctx context.Context) (models.ClientConfig, error)
}
