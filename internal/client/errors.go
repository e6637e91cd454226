// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNilAdapter  = errors.New("server adapter is nil")
	ErrProbeFailed = errors.New("probe failed")
	ErrUnhealthy   = errors.New("server reported unhealthy status")
)
