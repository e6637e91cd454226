// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/unified-ai-lab/models"
)

type healthService struct{}

func NewHealthService() HealthService {
	return &healthService{}
}

func (s *healthService) Check(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{Status: models.HealthStatusOK}
}
