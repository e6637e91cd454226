// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// API payloads describe live process state, so responses are marked
// non-cacheable and must not be content-sniffed. If marshaling fails nothing
// but a 500 is written and a wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.HealthStatus{Status: models.HealthStatusOK}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	n, err := w.Write(jsonData)
	if err != nil {
		return n, fmt.Errorf("error writing response body: %w", err)
	}
	return n, nil
}
