// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package site

import "errors"

var (
	ErrParsingTemplates = errors.New("error parsing site templates")
	ErrRenderingPage    = errors.New("error rendering page")
	ErrEncodingIcon     = errors.New("error encoding icon")
)
