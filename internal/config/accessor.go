// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"

	"github.com/caarlos0/env/v11"
)

// Accessor resolves client and server configuration from an [Environment].
// It holds no mutable state and is safe for concurrent use.
type Accessor struct {
	env      Environment
	required []string
}

// NewAccessor returns an [Accessor] reading from environment.
func NewAccessor(environment Environment) *Accessor {
	return &Accessor{
		env:      environment,
		required: requiredServerKeys,
	}
}

// Client returns the client-visible configuration. It never fails: missing or
// empty values are replaced by their defaults.
func (a *Accessor) Client() ClientEnv {
	var c ClientEnv

	opts := env.Options{
		Environment: a.clientEnviron(),
	}
	// envDefault covers missing and empty variables. The struct declares only
	// string fields, so a parse error is not expected.
	_ = env.ParseWithOptions(&c, opts)

	c.applyDefaults()
	return c
}

// Server validates and returns the server-only configuration.
//
// The scope in ctx is checked before any key is looked up: anything but
// [ScopeTrusted] yields [ErrContextViolation]. Required keys are then checked in
// order and the first absent or empty one is reported as a
// [*MissingValueError]; no partial result is ever returned.
func (a *Accessor) Server(ctx context.Context) (ServerEnv, error) {
	if ScopeFromContext(ctx) != ScopeTrusted {
		return ServerEnv{}, ErrContextViolation
	}

	values := make(map[string]string, len(a.required))
	for _, key := range a.required {
		value, ok := a.env.Lookup(key)
		if !ok || value == "" {
			return ServerEnv{}, &MissingValueError{Key: key}
		}
		values[key] = value
	}

	return ServerEnv{values: values}, nil
}

// clientEnviron copies only the client-visible keys, so server-only values
// never pass through the client path.
func (a *Accessor) clientEnviron() map[string]string {
	environ := make(map[string]string, 1)
	if v, ok := a.env.Lookup(KeyAppName); ok {
		environ[KeyAppName] = v
	}
	return environ
}
