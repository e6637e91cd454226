// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/internal/service"
	"github.com/MKhiriev/unified-ai-lab/internal/site"
)

type Handler struct {
	services *service.Services
	renderer *site.Renderer
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("error creating page renderer: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		renderer: renderer,
		cfg:      cfg,
		logger:   logger,
	}, nil
}
