// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// ServerEnv holds validated server-only values. It can only be obtained from a
// successful [Accessor.Server] call, so every required key is present and
// non-empty.
type ServerEnv struct {
	values map[string]string
}

// Get returns the value stored under key.
func (e ServerEnv) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// OpenAIAPIKey returns the validated API credential.
func (e ServerEnv) OpenAIAPIKey() string {
	return e.values[KeyOpenAIAPIKey]
}

// Keys returns the stored keys in lexical order.
func (e ServerEnv) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored keys.
func (e ServerEnv) Len() int {
	return len(e.values)
}

// String lists keys with their values redacted.
func (e ServerEnv) String() string {
	var b strings.Builder
	b.WriteString("ServerEnv{")
	for i, k := range e.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(redacted)
	}
	b.WriteString("}")
	return b.String()
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler without
// revealing any value.
func (e ServerEnv) MarshalZerologObject(ev *zerolog.Event) {
	for _, k := range e.Keys() {
		ev.Str(k, redacted)
	}
}
