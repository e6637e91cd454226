// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_VersionInfo(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want VersionInfo
	}{
		{
			name: "injected",
			info: NewAppBuildInfo("v1.2.3", "2026-01-02", "abc123"),
			want: VersionInfo{Version: "1.2.3", BuildVersion: "v1.2.3", BuildDate: "2026-01-02", BuildCommit: "abc123"},
		},
		{
			name: "not injected",
			info: AppBuildInfo{},
			want: VersionInfo{Version: "1.2.3", BuildVersion: NotAvailable, BuildDate: NotAvailable, BuildCommit: NotAvailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.VersionInfo("1.2.3"))
		})
	}
}
