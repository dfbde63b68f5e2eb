package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote authority settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidEngineConfigs indicates invalid sync engine settings
	// (for example, non-positive batch size).
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidMonitorConfigs indicates invalid connection monitor settings
	// (for example, non-positive probe interval).
	ErrInvalidMonitorConfigs = errors.New("invalid monitor configuration")
	// ErrInvalidIdentityConfigs indicates a missing tenant or user identity
	// context.
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
)
