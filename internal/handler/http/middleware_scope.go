// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
)

// withClientScope marks the request context as untrusted. Any attempt to
// resolve server-only configuration while serving the request fails with
// [config.ErrContextViolation].
func withClientScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := config.WithScope(r.Context(), config.ScopeUntrusted)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
