// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "time"

// Check is the outcome of a single API call made by the probe.
type Check struct {
	Name     string
	Detail   string
	Err      error
	Duration time.Duration
}

// OK reports whether the check succeeded.
func (c Check) OK() bool {
	return c.Err == nil
}

// Report is the result of one probe run against a server.
type Report struct {
	BaseURL string
	Checks  []Check
}

// Failed returns the checks that did not succeed, in run order.
func (r Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.OK() {
			failed = append(failed, c)
		}
	}
	return failed
}
