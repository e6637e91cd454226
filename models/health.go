// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatusOK is the only status a running server reports.
const HealthStatusOK = "ok"

// HealthStatus is the payload of GET /api/health.
type HealthStatus struct {
	Status string `json:"status"`
}
