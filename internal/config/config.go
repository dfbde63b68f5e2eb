// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package config

import (
	"time"
)

// Config is the top-level configuration container for the offsync daemon.
// It is populated by merging values from environment variables, command-line
// flags, an optional JSON file, and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Storage holds the local durable storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the remote authority endpoint settings used by the
	// adapter and the connectivity probe.
	Remote Remote `envPrefix:"REMOTE_"`

	// Monitor holds connection monitor timing settings.
	Monitor Monitor `envPrefix:"MONITOR_"`

	// Engine holds sync engine batching and retry settings.
	Engine Engine `envPrefix:"ENGINE_"`

	// Lock holds offline write-lock arbitration settings.
	Lock Lock `envPrefix:"LOCK_"`

	// Server holds the local admin HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Identity holds the tenant/user context this installation replicates
	// under.
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of env and flag values. Populated via the CONFIG environment
	// variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the local database connection settings.
type DB struct {
	// DSN is the SQLite file path (or connection string) of the local
	// replication database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds network settings for the remote authority.
type Remote struct {
	// BaseURL is the remote API root, e.g. "https://api.example.com".
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the transport-level timeout for outbound calls.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbePath is the reachability endpoint used by the connection
	// monitor's active probe.
	// Env: REMOTE_PROBE_PATH
	ProbePath string `env:"PROBE_PATH"`

	// Login and Password authenticate the daemon's service session against
	// the remote authority.
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
}

// Monitor holds connection monitor timings.
type Monitor struct {
	// ProbeInterval is the period of the active reachability probe.
	// Env: MONITOR_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeDebounce is the minimum spacing between two probes; CheckStatus
	// calls inside this window return the cached status.
	// Env: MONITOR_PROBE_DEBOUNCE
	ProbeDebounce time.Duration `env:"PROBE_DEBOUNCE"`
}

// Engine holds sync engine batching, retry, and pacing settings.
type Engine struct {
	// BatchSize is the bounded fan-out of one batch.
	// Env: ENGINE_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// MaxRetries is the number of retries after the initial attempt before
	// an item is marked permanently failed.
	// Env: ENGINE_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// BaseRetryDelay is the backoff unit: a retried item waits
	// BaseRetryDelay * 2^(retryCount-1) before its next attempt.
	// Env: ENGINE_BASE_RETRY_DELAY
	BaseRetryDelay time.Duration `env:"BASE_RETRY_DELAY"`

	// ItemTimeout is the per-item deadline for the remote call.
	// Env: ENGINE_ITEM_TIMEOUT
	ItemTimeout time.Duration `env:"ITEM_TIMEOUT"`

	// BatchDelay is the pause between consecutive batches.
	// Env: ENGINE_BATCH_DELAY
	BatchDelay time.Duration `env:"BATCH_DELAY"`

	// PausePoll is how often a paused run re-checks for resume/stop.
	// Env: ENGINE_PAUSE_POLL
	PausePoll time.Duration `env:"PAUSE_POLL"`
}

// Lock holds offline write-lock settings.
type Lock struct {
	// TTL is the lifetime of an offline lock after its last refresh.
	// Expired locks are treated as released. Zero disables expiry.
	// Env: LOCK_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds the admin HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address of the local admin API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Identity holds the replication context of this installation.
type Identity struct {
	// TenantID scopes every queue item and lock this daemon touches.
	// Env: IDENTITY_TENANT_ID
	TenantID string `env:"TENANT_ID"`

	// UserID is the identity used for offline lock arbitration.
	// Env: IDENTITY_USER_ID
	UserID string `env:"USER_ID"`

	// UserLabel is a human-readable name shown to other identities blocked
	// by this one.
	// Env: IDENTITY_USER_LABEL
	UserLabel string `env:"USER_LABEL"`
}
