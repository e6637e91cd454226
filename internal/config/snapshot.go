// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment is a read-only view of key-value configuration.
type Environment interface {
	// Lookup returns the value stored under key and whether it was present.
	Lookup(key string) (string, bool)
}

// Snapshot is an immutable copy of the environment taken once at startup.
// The zero value is an empty snapshot.
type Snapshot struct {
	values map[string]string
}

// FromMap builds a [Snapshot] from m. The map is copied, so later changes to m
// are not observed.
func FromMap(m map[string]string) Snapshot {
	values := make(map[string]string, len(m))
	for k, v := range m {
		values[k] = v
	}
	return Snapshot{values: values}
}

// FromProcess captures the current process environment.
func FromProcess() Snapshot {
	return Snapshot{values: environToMap(os.Environ())}
}

// LoadSnapshot reads the given dotenv files in order (later files override
// earlier ones) and overlays the process environment on top, so values set in
// the process always win. Files that do not exist are skipped.
func LoadSnapshot(files ...string) (Snapshot, error) {
	values := make(map[string]string)

	for _, file := range files {
		fileValues, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Snapshot{}, fmt.Errorf("error reading env file %q: %w", file, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	for k, v := range environToMap(os.Environ()) {
		values[k] = v
	}

	return Snapshot{values: values}, nil
}

// Lookup implements [Environment].
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of keys in the snapshot.
func (s Snapshot) Len() int {
	return len(s.values)
}

// Environ returns a copy of the snapshot as a map, suitable for
// env.Options.Environment.
func (s Snapshot) Environ() map[string]string {
	values := make(map[string]string, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	return values
}

func environToMap(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return values
}
