// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/internal/service"
	"github.com/MKhiriev/unified-ai-lab/models"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported by the gRPC health service next to the
// overall ("") status.
const ServiceName = "unified_ai_lab.Lab"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service, whose status mirrors the
// application's HealthService. A handler instance is created once at startup
// and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health is the grpc.health.v1 implementation.
	health *grpchealth.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   grpchealth.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health and reflection services to s and publishes the
// current serving status.
func (h *Handler) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, h.health)
	reflection.Register(s)
	h.Refresh(context.Background())
}

// Refresh sets the serving status of every reported service from the
// application's HealthService.
func (h *Handler) Refresh(ctx context.Context) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if h.services != nil && h.services.HealthService != nil &&
		h.services.HealthService.Check(ctx).Status == models.HealthStatusOK {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status updated")
}

// Shutdown marks every service NOT_SERVING. Status updates after Shutdown
// are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
