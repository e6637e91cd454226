// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VersionInfo is the payload of GET /api/version.
type VersionInfo struct {
	// Version is the configured application version.
	Version string `json:"version"`
	// BuildVersion is the version injected at link time, "N/A" if unset.
	BuildVersion string `json:"build_version"`
	// BuildDate is the build timestamp injected at link time.
	BuildDate string `json:"build_date"`
	// BuildCommit is the commit hash injected at link time.
	BuildCommit string `json:"build_commit"`
}
