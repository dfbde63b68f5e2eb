// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

// Package store implements the durable local half of the replication core:
// the per-tenant operation queue, the offline lock table, and the device
// identity record, all backed by a single SQLite database.
package store

import (
	"context"
	"encoding/json"

	"github.com/akudrin/offsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QueueRepository is the durable per-tenant operation queue. Every enqueued
// mutation is committed to the local database before Enqueue returns; the
// repository never retries its own persistence operations, and storage
// failures propagate to the caller wrapped around the sentinel errors of
// this package.
type QueueRepository interface {
	// Enqueue durably stores one pending mutation and returns its generated
	// id. The payload is opaque; its top-level "id" field, when present, is
	// extracted so queued work for a locally deleted entity can later be
	// cancelled via RemovePendingByEntity.
	Enqueue(ctx context.Context, tenantID, userID, deviceID, operationType string, action models.QueueAction, payload json.RawMessage) (string, error)

	// GetItem loads a single queue item by id.
	GetItem(ctx context.Context, id string) (models.QueueItem, error)

	// GetPendingItems returns the tenant's pending items ordered ascending
	// by enqueue time.
	GetPendingItems(ctx context.Context, tenantID string) ([]models.QueueItem, error)

	// GetAllItems returns every queue item of the tenant regardless of
	// status, in enqueue order. Used for introspection and cleanup.
	GetAllItems(ctx context.Context, tenantID string) ([]models.QueueItem, error)

	// UpdateStatus sets the item's status and stamps last_attempt_at. A
	// non-empty errMsg records a failed attempt: retry_count is incremented
	// and last_error stored. Returns ErrQueueItemNotFound if id is absent.
	UpdateStatus(ctx context.Context, id string, status models.QueueStatus, errMsg string) error

	// Remove deletes a single item by id.
	Remove(ctx context.Context, id string) error

	// ClearCompleted purges the tenant's completed items and returns the
	// number of rows removed.
	ClearCompleted(ctx context.Context, tenantID string) (int64, error)

	// ClearAll removes every queue item of the tenant. Destructive; admin
	// and test use only.
	ClearAll(ctx context.Context, tenantID string) (int64, error)

	// RemovePendingByEntity cancels not-yet-completed, non-delete items of
	// the tenant whose payload id matches entityID. Returns the number of
	// cancelled items.
	RemovePendingByEntity(ctx context.Context, tenantID, operationType, entityID string) (int64, error)

	// PendingCount returns the number of pending items for the tenant.
	PendingCount(ctx context.Context, tenantID string) (int64, error)

	// FailedCount returns the number of permanently failed items for the
	// tenant.
	FailedCount(ctx context.Context, tenantID string) (int64, error)
}

// LockRepository persists the per-tenant offline write locks shared across
// devices. At most one row exists per tenant.
type LockRepository interface {
	// Get returns the tenant's lock record, or ErrLockNotFound.
	Get(ctx context.Context, tenantID string) (models.OfflineLock, error)

	// Upsert creates or refreshes the tenant's lock record.
	Upsert(ctx context.Context, lock models.OfflineLock) error

	// Delete removes the tenant's lock record. Returns ErrLockNotFound when
	// no record existed.
	Delete(ctx context.Context, tenantID string) error

	// GetAll lists every persisted lock across tenants.
	GetAll(ctx context.Context) ([]models.OfflineLock, error)

	// ClearAll drops every lock record and returns the number removed.
	// Destructive; admin and test use only.
	ClearAll(ctx context.Context) (int64, error)
}

// IdentityRepository owns the installation's device identity.
type IdentityRepository interface {
	// DeviceIdentity returns the persisted device identity, generating and
	// storing one on first call. The identity is immutable afterwards.
	DeviceIdentity(ctx context.Context) (models.DeviceIdentity, error)
}
