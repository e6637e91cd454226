// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "context"

// Scope tags the execution context a configuration read happens in.
type Scope uint8

const (
	// ScopeUntrusted marks code whose output reaches a browser or another
	// untrusted caller. It is the zero value, so an unmarked context is
	// untrusted.
	ScopeUntrusted Scope = iota

	// ScopeTrusted marks server-only code paths such as process startup.
	ScopeTrusted
)

// String returns a lower-case label for the scope.
func (s Scope) String() string {
	switch s {
	case ScopeTrusted:
		return "trusted"
	default:
		return "untrusted"
	}
}

type scopeCtxKey struct{}

// WithScope returns a copy of ctx carrying scope.
func WithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, scope)
}

// ScopeFromContext returns the scope stored in ctx, or [ScopeUntrusted] when
// none was set.
func ScopeFromContext(ctx context.Context) Scope {
	scope, ok := ctx.Value(scopeCtxKey{}).(Scope)
	if !ok {
		return ScopeUntrusted
	}
	return scope
}
