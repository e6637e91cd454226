// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/unified-ai-lab/internal/adapter"
	"github.com/MKhiriev/unified-ai-lab/internal/config"
	"github.com/MKhiriev/unified-ai-lab/internal/logger"
	"github.com/MKhiriev/unified-ai-lab/internal/mock"
	"github.com/MKhiriev/unified-ai-lab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	out := &bytes.Buffer{}

	app, err := NewApp(serverAdapter, config.ProbeConfig{BaseURL: "http://localhost:3000"}, out, logger.Nop())
	require.NoError(t, err)
	return app, serverAdapter, out
}

func TestNewApp_NilAdapter(t *testing.T) {
	_, err := NewApp(nil, config.ProbeConfig{}, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilAdapter)
}

func TestRun_AllChecksPass(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	ctx := context.Background()

	gomock.InOrder(
		serverAdapter.EXPECT().Health(ctx).Return(models.HealthStatus{Status: models.HealthStatusOK}, nil),
		serverAdapter.EXPECT().Version(ctx).Return(models.VersionInfo{Version: "0.1.0", BuildCommit: "abc123"}, nil),
		serverAdapter.EXPECT().ClientConfig(ctx).Return(models.ClientConfig{AppName: "Unified AI Lab"}, nil),
	)

	require.NoError(t, app.Run(ctx))

	report := out.String()
	assert.Contains(t, report, "http://localhost:3000")
	assert.Contains(t, report, "0.1.0")
	assert.Contains(t, report, "commit abc123")
	assert.Contains(t, report, "app name: Unified AI Lab")
	assert.Contains(t, report, "all checks passed")
	assert.NotContains(t, report, "FAIL")
}

func TestRun_UnreachableServer(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	ctx := context.Background()
	unreachable := errors.New("connection refused")

	serverAdapter.EXPECT().Health(ctx).Return(models.HealthStatus{}, unreachable)
	serverAdapter.EXPECT().Version(ctx).Return(models.VersionInfo{}, unreachable)
	serverAdapter.EXPECT().ClientConfig(ctx).Return(models.ClientConfig{}, unreachable)

	err := app.Run(ctx)

	require.ErrorIs(t, err, ErrProbeFailed)
	assert.Contains(t, err.Error(), "health, version, config")
	assert.Contains(t, out.String(), "3 of 3 checks failed")
	assert.Contains(t, out.String(), "connection refused")
}

func TestProbe_UnhealthyStatus(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Health(ctx).Return(models.HealthStatus{Status: "degraded"}, nil)
	serverAdapter.EXPECT().Version(ctx).Return(models.VersionInfo{Version: "0.1.0"}, nil)
	serverAdapter.EXPECT().ClientConfig(ctx).Return(models.ClientConfig{AppName: "Lab"}, nil)

	report := app.Probe(ctx)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, CheckHealth, failed[0].Name)
	assert.ErrorIs(t, failed[0].Err, ErrUnhealthy)
}

func TestProbe_RateLimitedConfigCheck(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Health(ctx).Return(models.HealthStatus{Status: models.HealthStatusOK}, nil)
	serverAdapter.EXPECT().Version(ctx).Return(models.VersionInfo{}, nil)
	serverAdapter.EXPECT().ClientConfig(ctx).Return(models.ClientConfig{}, adapter.ErrTooManyRequests)

	report := app.Probe(ctx)

	require.Len(t, report.Checks, 3)
	assert.True(t, report.Checks[0].OK())
	assert.Equal(t, "N/A (build N/A, N/A, commit N/A)", report.Checks[1].Detail)
	assert.ErrorIs(t, report.Checks[2].Err, adapter.ErrTooManyRequests)
}

func TestRenderPage_EmptyData(t *testing.T) {
	page := renderPage("TITLE", "  ", "footer")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "\n-\n")
	assert.Contains(t, page, "footer")
}
