// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/models"
)

// Header links and page copy.
const (
	HealthCheckPath  = "/api/health"
	StreamlitToolURL = "http://localhost:8501"
	VercelDocsURL    = "https://vercel.com/docs/deployments/overview"

	siteTagline = "A production-ready monorepo starter. Next.js powers the web UI, Streamlit " +
		"delivers local tooling, and Codespaces makes it easy to collaborate."
)

var siteSections = []models.Section{
	{
		Title: "Local developer experience",
		Body: "Run `pnpm dev` from the `/web` directory for the Next.js app, or " +
			"`streamlit run app/Home.py` for the Python tool. GitHub Codespaces handles both " +
			"automatically thanks to the devcontainer setup.",
	},
	{
		Title: "Deploy to Vercel",
		Body: "Point Vercel to the `web` directory, copy your environment variables, and " +
			"you're live with modern infrastructure defaults.",
	},
}

type siteService struct {
	source ClientConfigSource

	logger *logger.Logger
}

func NewSiteService(source ClientConfigSource, logger *logger.Logger) (SiteService, error) {
	if source == nil {
		return nil, ErrNoConfigAccessor
	}

	return &siteService{
		source: source,
		logger: logger,
	}, nil
}

func (s *siteService) HomePage(ctx context.Context) models.HomePage {
	clientEnv := s.source.Client()

	sections := make([]models.Section, len(siteSections))
	copy(sections, siteSections)

	return models.HomePage{
		Header: models.Header{
			Title:   clientEnv.AppName,
			Tagline: siteTagline,
			Links: []models.Link{
				{Label: "Check API health", Href: HealthCheckPath, Variant: models.LinkPrimary},
				{Label: "Open Streamlit tool", Href: StreamlitToolURL, Variant: models.LinkOutline, External: true},
				{Label: "Learn about Vercel deployments", Href: VercelDocsURL, Variant: models.LinkGhost, External: true},
			},
		},
		Sections: sections,
	}
}

func (s *siteService) ClientConfig(ctx context.Context) models.ClientConfig {
	return models.ClientConfig{AppName: s.source.Client().AppName}
}
