// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

// Package service implements the replication core: the connection monitor,
// the offline write-lock arbiter, and the sync engine that drains the
// durable queue against the remote authority.
package service

import (
	"context"

	"github.com/akudrin/offsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MonitorCallbacks carries the notification hooks a caller registers with
// StartMonitoring. Each hook fires only on a changed status, never on a
// re-confirmed one. Any field may be nil.
type MonitorCallbacks struct {
	OnStatusChange func(models.ConnectionStatus)
	OnOnline       func()
	OnOffline      func()
}

// ConnectionMonitor tracks remote reachability as a tri-state machine:
// checking until the first verdict, then online/offline. Verdicts come from
// an active probe of the remote health endpoint and from platform
// connectivity signals, with a platform "offline" signal authoritative over
// probes.
type ConnectionMonitor interface {
	// StartMonitoring registers callbacks and launches the periodic probe.
	// A previously running monitor loop is stopped first.
	StartMonitoring(ctx context.Context, callbacks MonitorCallbacks)

	// StopMonitoring stops the probe loop and blocks until it has exited.
	// Safe to call when monitoring is not active.
	StopMonitoring()

	// CheckStatus returns the current status, issuing a fresh probe unless
	// one ran within the debounce window, in which case the cached status
	// is returned.
	CheckStatus(ctx context.Context) models.ConnectionStatus

	// GetStatus returns the last known status without probing.
	GetStatus() models.ConnectionState

	// IsOnline reports whether the last known status is online.
	IsOnline() bool

	// IsOffline reports whether the last known status is offline.
	IsOffline() bool

	// NotifyPlatformOnline records a platform "online" signal and triggers
	// a re-probe. The status does not flip to online without a probe
	// verdict, but a failed probe right after a platform online signal
	// keeps the status online (the OptimisticOnlineFallback policy).
	NotifyPlatformOnline(ctx context.Context)

	// NotifyPlatformOffline records a platform "offline" signal. Immediate
	// and authoritative: the status becomes offline regardless of probes.
	NotifyPlatformOffline()
}

// StatusSource is the read-only connectivity view the lock arbiter needs.
type StatusSource interface {
	IsOnline() bool
}

// LockArbiter performs single-writer arbitration for a tenant during
// offline periods. The arbitration key is the user identity; the device
// identity is carried for attribution only. Lock state is durable and
// shared across devices of the tenant; the lock is advisory.
type LockArbiter interface {
	// SetUserContext sets the identity and tenant all subsequent lock
	// operations act for.
	SetUserContext(userID, userLabel, tenantID string)

	// SetDeviceID sets the device attribution recorded on acquired locks.
	SetDeviceID(deviceID string)

	// HandleOffline runs the acquisition algorithm for the current
	// identity: an absent or expired lock is acquired, an own lock is
	// refreshed, a foreign live lock leaves this identity read-only.
	HandleOffline(ctx context.Context) error

	// HandleOnline releases the tenant's lock if the current identity owns
	// it. A foreign lock is left untouched.
	HandleOnline(ctx context.Context) error

	// HasOfflineWriteAccess reports whether the current identity may mutate
	// tenant data right now: always true while online; while offline, true
	// iff no live lock exists or the current identity holds it.
	HasOfflineWriteAccess(ctx context.Context) (bool, error)

	// GetOfflineLockOwner returns the identity blocking the current one,
	// or nil when online, when no live lock exists, or when the current
	// identity holds the lock itself.
	GetOfflineLockOwner(ctx context.Context) (*models.LockOwner, error)

	// GetOfflineLock returns the tenant's lock record, expired or not.
	// Returns store.ErrLockNotFound when no record exists.
	GetOfflineLock(ctx context.Context, tenantID string) (models.OfflineLock, error)

	// IsTenantLocked reports whether a live (non-expired) lock exists for
	// the tenant, regardless of its owner.
	IsTenantLocked(ctx context.Context, tenantID string) (bool, error)

	// ReleaseOfflineLock force-removes the tenant's lock regardless of
	// ownership. Admin use.
	ReleaseOfflineLock(ctx context.Context, tenantID string) error

	// GetAllOfflineLocks lists every persisted lock across tenants.
	GetAllOfflineLocks(ctx context.Context) ([]models.OfflineLock, error)

	// ClearAllOfflineLocks drops every lock record and returns the number
	// removed. Admin use.
	ClearAllOfflineLocks(ctx context.Context) (int64, error)
}

// SyncEngine drains a tenant's pending queue against the remote API with
// bounded per-batch concurrency, per-item timeouts, and exponential retry
// backoff. One logical run per engine instance at a time.
type SyncEngine interface {
	// Start launches a drain run for the tenant in the background.
	// Idempotent: a no-op while a run is already active.
	Start(ctx context.Context, tenantID string)

	// Pause suspends the run at the next batch boundary. Items already
	// dispatched settle normally.
	Pause()

	// Resume lifts a pause.
	Resume()

	// Stop ends the run at the next batch boundary. Unprocessed items stay
	// pending and are picked up by the next Start.
	Stop()

	// IsRunning reports whether a run is currently active.
	IsRunning() bool

	// OnProgress registers an observer invoked after every settled item.
	// The returned function unsubscribes it.
	OnProgress(fn func(models.SyncProgress)) func()

	// OnComplete registers an observer invoked once per finished run.
	// The returned function unsubscribes it.
	OnComplete(fn func(models.SyncResult)) func()
}
