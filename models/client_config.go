// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClientConfig is the payload of GET /api/config. Only client-visible keys
// belong here.
type ClientConfig struct {
	AppName string `json:"app_name"`
}
