// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/unified-ai-lab/internal/app"
	"github.com/MKhiriev/unified-ai-lab/internal/site"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "render failure", err: fmt.Errorf("%w: boom", site.ErrRenderingPage), wantStatus: http.StatusInternalServerError, wantMessage: app.MsgPageUnavailable},
		{name: "icon failure", err: site.ErrEncodingIcon, wantStatus: http.StatusInternalServerError, wantMessage: app.MsgPageUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantMessage: app.MsgRequestTimedOut},
		{name: "canceled", err: fmt.Errorf("wrapped: %w", context.Canceled), wantStatus: http.StatusServiceUnavailable, wantMessage: app.MsgServiceUnavailable},
		{name: "unknown", err: errors.New("other"), wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
