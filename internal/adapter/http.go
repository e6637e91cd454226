// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/internal/utils"
	"github.com/MKhiriev/unified-ai-lab/models"
)

// API paths served by the lab server.
const (
	healthPath  = "/api/health"
	versionPath = "/api/version"
	configPath  = "/api/config"

	traceIDHeader = "X-Trace-ID"
	userAgent     = "unified-ai-lab-probe"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] targeting cfg.BaseURL. Every request carries a fresh
// X-Trace-ID so it can be found in the server's access log.
//
// Returns [ErrInvalidBaseURL] if cfg.BaseURL cannot be normalised.
func NewHTTPServerAdapter(cfg config.ProbeConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    cfg.RequestTimeout,
		UserAgent:  userAgent,
		RetryCount: utils.DefaultRetryCount,
	})

	return &httpServerAdapter{
		client:  client,
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	if err := h.getJSON(ctx, healthPath, &status); err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	return status, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo
	if err := h.getJSON(ctx, versionPath, &info); err != nil {
		return models.VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	return info, nil
}

// ClientConfig implements [ServerAdapter].
func (h *httpServerAdapter) ClientConfig(ctx context.Context) (models.ClientConfig, error) {
	var cfg models.ClientConfig
	if err := h.getJSON(ctx, configPath, &cfg); err != nil {
		return models.ClientConfig{}, fmt.Errorf("client config request: %w", err)
	}
	return cfg, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	traceID := h.traceID.Generate()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID).
		Get(path)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Str("path", path).
		Str("trace_id", traceID).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("probe request")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrUnexpectedResponse, path, err)
	}
	return nil
}
