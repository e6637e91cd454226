// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGZip(t *testing.T) {
	const body = "Hello, World!"

	tests := []struct {
		name           string
		method         string
		acceptEncoding string
		explicitHeader bool
		wantGzipped    bool
	}{
		{name: "gzip accepted", method: http.MethodGet, acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip among several encodings", method: http.MethodGet, acceptEncoding: "deflate, gzip, br", wantGzipped: true},
		{name: "gzip accepted with explicit WriteHeader", method: http.MethodGet, acceptEncoding: "gzip", explicitHeader: true, wantGzipped: true},
		{name: "gzip not accepted", method: http.MethodGet, acceptEncoding: "", wantGzipped: false},
		{name: "HEAD is never compressed", method: http.MethodHead, acceptEncoding: "gzip", wantGzipped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				if tt.explicitHeader {
					w.WriteHeader(http.StatusOK)
				}
				_, _ = w.Write([]byte(body))
			})

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

			if !tt.wantGzipped {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rec.Body.String())
				return
			}

			require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			zr, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
		})
	}
}

func TestGZip_DropsContentLength(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "13")
		_, _ = w.Write([]byte("Hello, World!"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Length"))
}
