// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for the servers managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the servers have shut down. The error is the
	// one Run returned, already logged.
	RunServer() error

	// Run starts serving requests and blocks until ctx is cancelled or a
	// listener fails. Shutdown is bounded by the configured timeout.
	Run(ctx context.Context) error
}

// transport is a single listener managed by the composite server.
type transport interface {
	name() string
	listen() error
	serve() error
	shutdown(ctx context.Context) error
	closeListener()
}
