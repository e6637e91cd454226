// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Accessor errors. Neither is recoverable locally: callers are expected to
// propagate them to the process boundary.
var (
	// ErrContextViolation is returned by [Accessor.Server] when it is called
	// from a context that is not marked [ScopeTrusted].
	ErrContextViolation = errors.New("server configuration requested from an untrusted context")

	// ErrMissingRequiredValue matches every [*MissingValueError] via errors.Is.
	ErrMissingRequiredValue = errors.New("missing required server environment variable")
)

// MissingValueError names a required key that is absent or empty.
type MissingValueError struct {
	Key string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredValue, e.Key)
}

// Is reports whether target is [ErrMissingRequiredValue].
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingRequiredValue
}

// Validation errors returned when a host configuration group is incomplete
// or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, no address at all or a non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAppConfigs indicates missing application-level settings
	// (for example, an empty version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidProbeConfigs indicates invalid probe settings
	// (for example, missing base URL or request timeout).
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
)
