// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/unified-ai-lab/internal/app"

// rateLimitExceededBody is written with HTTP 429 when a client exceeds the
// API rate limit.
const rateLimitExceededBody = `{"error":"rate_limit_exceeded","detail":"` + app.MsgTooManyRequests + `"}`
