// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/handler"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration
	started         atomic.Bool
	ready           chan struct{}

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		ready:           make(chan struct{}),
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Run binds every enabled listener, serves until ctx is done or one of them
// fails, then shuts all of them down within the shutdown timeout.
func (s *server) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errServerAlreadyRan
	}

	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersToRun
	}

	for i, t := range transports {
		if err := t.listen(); err != nil {
			for _, bound := range transports[:i] {
				bound.closeListener()
			}
			return err
		}
	}
	close(s.ready)

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		g.Go(t.serve)
	}
	g.Go(func() error {
		<-gctx.Done()
		return s.shutdownAll(transports)
	})

	return g.Wait()
}

// Ready is closed once all listeners are bound.
func (s *server) Ready() <-chan struct{} {
	return s.ready
}

func (s *server) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}

func (s *server) shutdownAll(transports []transport) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	for _, t := range transports {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
