// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/unified-ai-lab/internal/adapter"
	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/models"
)

// Names of the checks in a report.
const (
	CheckHealth  = "health"
	CheckVersion = "version"
	CheckConfig  = "config"
)

// App probes a running lab server and prints a report.
type App struct {
	adapter adapter.ServerAdapter
	baseURL string
	out     io.Writer

	logger *logger.Logger
}

// NewApp creates a probe application writing its report to out.
func NewApp(serverAdapter adapter.ServerAdapter, cfg config.ProbeConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	return &App{
		adapter: serverAdapter,
		baseURL: cfg.BaseURL,
		out:     out,
		logger:  logger,
	}, nil
}

// Run probes the server, writes the report and returns [ErrProbeFailed]
// naming the failed checks if any of them failed.
func (a *App) Run(ctx context.Context) error {
	report := a.Probe(ctx)

	if _, err := io.WriteString(a.out, renderReport(report)+"\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	failed := report.Failed()
	if len(failed) == 0 {
		return nil
	}

	names := make([]string, 0, len(failed))
	for _, c := range failed {
		a.logger.Error().Err(c.Err).Str("check", c.Name).Msg("probe check failed")
		names = append(names, c.Name)
	}
	return fmt.Errorf("%w: %s", ErrProbeFailed, strings.Join(names, ", "))
}

// Probe runs every check in order. A failed check does not stop the others.
func (a *App) Probe(ctx context.Context) Report {
	report := Report{BaseURL: a.baseURL}

	report.Checks = append(report.Checks, a.run(ctx, CheckHealth, func(ctx context.Context) (string, error) {
		status, err := a.adapter.Health(ctx)
		if err != nil {
			return "", err
		}
		if status.Status != models.HealthStatusOK {
			return status.Status, fmt.Errorf("%w: %q", ErrUnhealthy, status.Status)
		}
		return status.Status, nil
	}))

	report.Checks = append(report.Checks, a.run(ctx, CheckVersion, func(ctx context.Context) (string, error) {
		info, err := a.adapter.Version(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (build %s, %s, commit %s)",
			valueOrNA(info.Version), valueOrNA(info.BuildVersion), valueOrNA(info.BuildDate), valueOrNA(info.BuildCommit)), nil
	}))

	report.Checks = append(report.Checks, a.run(ctx, CheckConfig, func(ctx context.Context) (string, error) {
		cfg, err := a.adapter.ClientConfig(ctx)
		if err != nil {
			return "", err
		}
		return "app name: " + valueOrNA(cfg.AppName), nil
	}))

	return report
}

func (a *App) run(ctx context.Context, name string, check func(context.Context) (string, error)) Check {
	start := time.Now()
	detail, err := check(ctx)
	c := Check{Name: name, Detail: detail, Err: err, Duration: time.Since(start)}

	a.logger.Debug().Str("check", name).Dur("duration", c.Duration).Bool("ok", c.OK()).Msg("probe check done")
	return c
}
