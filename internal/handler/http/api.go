// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())
	h.writeJSON(w, r, status)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetVersionInfo(r.Context())
	h.writeJSON(w, r, info)
}

// clientConfig serves the client-visible configuration. Server-only keys are
// never part of the payload.
func (h *Handler) clientConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.services.SiteService.ClientConfig(r.Context())
	h.writeJSON(w, r, cfg)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("error writing response")
	}
}
