package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

// build merges the collected config layers in registration order. mergo only
// fills fields still at their zero value, so earlier layers take precedence.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults registers the built-in defaults as the lowest-priority layer.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *Config {
	return &Config{
		Storage: Storage{
			DB: DB{DSN: "offsync.db"},
		},
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
			ProbePath:      "/api/health",
		},
		Monitor: Monitor{
			ProbeInterval: 30 * time.Second,
			ProbeDebounce: 5 * time.Second,
		},
		Engine: Engine{
			BatchSize:      5,
			MaxRetries:     3,
			BaseRetryDelay: 2 * time.Second,
			ItemTimeout:    30 * time.Second,
			BatchDelay:     100 * time.Millisecond,
			PausePoll:      500 * time.Millisecond,
		},
		Lock: Lock{
			TTL: 72 * time.Hour,
		},
		Server: Server{
			HTTPAddress: "127.0.0.1:8750",
		},
	}
}

// GetConfig assembles the daemon configuration from environment variables,
// command-line flags, an optional JSON file, and defaults, then validates
// the merged result.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
