// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package config

// validate checks that the final merged [Config] satisfies the daemon's
// startup invariants and normalises sentinel values.
//
// A negative Lock.TTL disables expiry: because defaults backfill zero-value
// fields, -1 is the explicit "no TTL" spelling.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Engine.BatchSize <= 0 || cfg.Engine.MaxRetries < 0 {
		return ErrInvalidEngineConfigs
	}

	if cfg.Monitor.ProbeInterval <= 0 || cfg.Monitor.ProbeDebounce <= 0 {
		return ErrInvalidMonitorConfigs
	}

	if cfg.Identity.TenantID == "" || cfg.Identity.UserID == "" {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Lock.TTL < 0 {
		cfg.Lock.TTL = 0
	}

	return nil
}
