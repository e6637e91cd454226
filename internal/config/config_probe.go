// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ProbeConfig is the probe CLI view of [StructuredConfig].
type ProbeConfig struct {
	// BaseURL is the root URL of the lab server.
	BaseURL string
	// RequestTimeout is the timeout for each probe request.
	RequestTimeout time.Duration
	// Log carries the log settings shared with the server.
	Log Log
}

// GetProbeConfig builds and validates a probe-specific config view from the
// merged structured configuration. Only the probe and log groups are
// validated, so server settings on the probe host never block it.
func GetProbeConfig(snapshot Snapshot, args []string) (*ProbeConfig, error) {
	cfg, err := newConfigBuilder(snapshot.Environ(), args).
		withEnv().
		withFlags().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	probeCfg := &ProbeConfig{
		BaseURL:        cfg.Probe.BaseURL,
		RequestTimeout: cfg.Probe.RequestTimeout,
		Log:            cfg.Log,
	}

	if err := probeCfg.validate(); err != nil {
		return nil, err
	}

	return probeCfg, nil
}
