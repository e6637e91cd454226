// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file.
// Every key present in the file wins over the environment and flags, even
// when its value is zero (for example "http_address": "" or "rate_limit": 0).
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version,omitempty"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address,omitempty"`
		GRPCAddress     string   `json:"grpc_address,omitempty"`
		RequestTimeout  Duration `json:"request_timeout,omitempty"`
		ShutdownTimeout Duration `json:"shutdown_timeout,omitempty"`
		RateLimit       int      `json:"rate_limit,omitempty"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level,omitempty"`
		Dir   string `json:"dir,omitempty"`
	} `json:"log,omitempty"`

	Probe struct {
		BaseURL        string   `json:"base_url,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
	} `json:"probe,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, []string, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var sections map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var explicit []string
	for section, keys := range sections {
		for key := range keys {
			field := section + "." + key
			if _, ok := fieldCopiers[field]; ok {
				explicit = append(explicit, field)
			}
		}
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimit:       jsonCfg.Server.RateLimit,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			Dir:   jsonCfg.Log.Dir,
		},
		Probe: Probe{
			BaseURL:        jsonCfg.Probe.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Probe.RequestTimeout),
		},
	}

	return cfg, explicit, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
