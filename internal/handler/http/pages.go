// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/internal/site"
)

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page := h.services.SiteService.HomePage(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderHomePage(w, page); err != nil {
		status, msg := responseFromError(err)
		log.Err(err).Int("status", status).Msg("error rendering home page")
		http.Error(w, msg, status)
	}
}

func (h *Handler) icon(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data, err := site.IconPNG()
	if err != nil {
		status, msg := responseFromError(err)
		log.Err(err).Int("status", status).Msg("error generating icon")
		http.Error(w, msg, status)
		return
	}

	w.Header().Set("Content-Type", site.IconContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
