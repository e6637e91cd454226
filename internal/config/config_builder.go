// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	environ map[string]string
	args    []string

	configs []*StructuredConfig
	// explicit lists the fields a source set on purpose. They are copied
	// after the merge, so an explicit zero still overrides earlier sources.
	explicit map[*StructuredConfig][]string
	err      error
}

func newConfigBuilder(environ map[string]string, args []string) *configBuilder {
	return &configBuilder{
		environ:  environ,
		args:     args,
		configs:  make([]*StructuredConfig, 0, 3),
		explicit: make(map[*StructuredConfig][]string, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	config, err := b.merge()
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// merge folds the collected sources in order without validating the result.
func (b *configBuilder) merge() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		for _, field := range b.explicit[cfg] {
			copyField(field, config, cfg)
		}
	}

	return config, nil
}

func (b *configBuilder) add(cfg *StructuredConfig, explicit []string) {
	b.configs = append(b.configs, cfg)
	if len(explicit) > 0 {
		b.explicit[cfg] = explicit
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(envCfg, clearEmptyEnv(envCfg, b.environ))
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, explicit, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(flagsCfg, explicit)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, explicit, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add(jsonCfg, explicit)

	return b
}
