// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves application configuration.
//
// Two concerns live here. The [Accessor] reads the startup [Snapshot] of the
// environment and exposes client-visible values ([Accessor.Client], always
// defaulted) and server-only values ([Accessor.Server], validated, and only
// available in a context marked [ScopeTrusted]).
//
// Host settings (addresses, timeouts, logging) are assembled from multiple
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Environment snapshot
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetStructuredConfig] for the server and
// [GetProbeConfig] for the probe CLI.
package config
