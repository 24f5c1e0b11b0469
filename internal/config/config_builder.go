package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// source orders the config layers. Higher sources override lower ones.
type source int

const (
	sourceDefaults source = iota
	sourceJSON
	sourceEnv
	sourceFlags
)

var mergeOrder = []source{sourceDefaults, sourceJSON, sourceEnv, sourceFlags}

type configBuilder struct {
	configs map[source]*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make(map[source]*StructuredConfig, len(mergeOrder)),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, src := range mergeOrder {
		cfg, ok := b.configs[src]
		if !ok {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs[sourceDefaults] = defaultConfig()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs[sourceEnv] = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs[sourceFlags] = flagsCfg
	return b
}

// withJSON loads the JSON file named by the flags or, failing that, by the
// environment.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, src := range []source{sourceEnv, sourceFlags} {
		if cfg, ok := b.configs[src]; ok && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs[sourceJSON] = jsonCfg

	return b
}
