// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Recognized environment keys.
const (
	// KeyAppName is the client-visible application display name.
	KeyAppName = "NEXT_PUBLIC_APP_NAME"

	// KeyOpenAIAPIKey is the server-only API credential.
	KeyOpenAIAPIKey = "OPENAI_API_KEY"
)

// DefaultAppName is used when [KeyAppName] is unset or empty.
const DefaultAppName = "Unified AI Lab"

// requiredServerKeys is checked in order by [Accessor.Server].
var requiredServerKeys = []string{
	KeyOpenAIAPIKey,
}

// RequiredServerKeys returns a copy of the ordered set of server-only keys
// that must be present and non-empty.
func RequiredServerKeys() []string {
	keys := make([]string, len(requiredServerKeys))
	copy(keys, requiredServerKeys)
	return keys
}
