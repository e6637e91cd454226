// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/models"
)

type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
	SiteService    SiteService
}

func NewServices(source ClientConfigSource, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	site, err := NewSiteService(source, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating site service: %w", err)
	}

	return &Services{
		AppInfoService: appInfo,
		HealthService:  NewHealthService(),
		SiteService:    site,
	}, nil
}
