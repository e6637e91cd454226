// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/unified-ai-lab/internal/app"
	"github.com/MKhiriev/unified-ai-lab/internal/site"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = map[error]errorResponse{
	site.ErrRenderingPage:    {http.StatusInternalServerError, app.MsgPageUnavailable},
	site.ErrEncodingIcon:     {http.StatusInternalServerError, app.MsgPageUnavailable},
	site.ErrParsingTemplates: {http.StatusInternalServerError, app.MsgPageUnavailable},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, app.MsgRequestTimedOut},
	context.Canceled:         {http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func responseFromError(err error) (int, string) {
	for target, resp := range errorResponses {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
