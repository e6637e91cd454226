// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// lab server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request. Keeping them in
// one place ensures consistent wording across the page and API routes.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPageUnavailable is returned when the landing page or the icon cannot
	// be produced.
	MsgPageUnavailable = "page is temporarily unavailable"

	// MsgRequestTimedOut is returned when a request exceeds the configured
	// request timeout.
	MsgRequestTimedOut = "request timed out"

	// MsgServiceUnavailable is returned when the request was cancelled, for
	// example because the server is shutting down.
	MsgServiceUnavailable = "service unavailable"

	// MsgNotFound is returned for paths no route is registered for.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when the path exists but does not
	// accept the request method. The Allow header lists the ones it does.
	MsgMethodNotAllowed = "method not allowed"

	// MsgTooManyRequests is returned when a client exceeds the API rate
	// limit.
	MsgTooManyRequests = "Too many requests. Please try again later."
)
