// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// ClientEnv holds values that are safe to expose to a browser. Every field
// always resolves to a non-empty string.
type ClientEnv struct {
	// AppName is the application display name.
	// Env: NEXT_PUBLIC_APP_NAME
	AppName string `env:"NEXT_PUBLIC_APP_NAME" envDefault:"Unified AI Lab" json:"app_name"`
}

// applyDefaults fills any field that is still empty after parsing. Parsing
// already applies envDefault to missing and empty variables; this keeps
// Client non-empty if parsing returned early with an error.
func (c *ClientEnv) applyDefaults() {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
}
