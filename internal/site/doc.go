// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package site renders the browser-facing parts of the lab: the landing page
// with its header and the generated application icon.
//
// Templates are embedded into the binary and parsed once in [NewRenderer].
// The renderer only ever sees [models.HomePage], which is built from
// client-visible configuration, so server-only values cannot reach the page.
package site
