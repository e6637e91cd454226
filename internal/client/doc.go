// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the probe CLI runtime.
//
// The probe calls the lab server's public API through an
// [adapter.ServerAdapter], collects the outcome of each check into a
// [Report] and prints it as a styled terminal view. Run fails with
// [ErrProbeFailed] when any check fails so the binary can exit non-zero.
package client
