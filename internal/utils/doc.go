// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the server and the
// probe CLI: JSON response writing, a preconfigured resty HTTP client and a
// trace id generator.
package utils
