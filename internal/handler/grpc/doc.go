// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the lab server: the standard
// grpc.health.v1 service plus server reflection.
package grpc
