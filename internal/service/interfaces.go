// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService exposes version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

// HealthService reports liveness of the process.
type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

// SiteService builds browser-facing view models. Everything it returns is
// derived from client-visible configuration only.
type SiteService interface {
	HomePage(ctx context.Context) models.HomePage
	ClientConfig(ctx context.Context) models.ClientConfig
}

// ClientConfigSource provides client-visible configuration.
// *config.Accessor satisfies it.
type ClientConfigSource interface {
	Client() config.ClientEnv
}
