// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package store

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/akudrin/offsync/models"
)

var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const queueColumns = `id, tenant_id, user_id, device_id, operation_type, action, payload, entity_id, enqueued_at, retry_count, status, last_attempt_at, last_error`

const (
	insertQueueItem = `
		INSERT INTO sync_queue (
			id,
			tenant_id,
			user_id,
			device_id,
			operation_type,
			action,
			payload,
			entity_id,
			enqueued_at,
			retry_count,
			status,
			last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, '');`

	upsertOfflineLock = `
		INSERT INTO offline_locks (tenant_id, owner_id, owner_label, owner_device_id, locked_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id) DO UPDATE SET
			owner_id = excluded.owner_id,
			owner_label = excluded.owner_label,
			owner_device_id = excluded.owner_device_id,
			locked_at = excluded.locked_at,
			expires_at = excluded.expires_at;`

	selectOfflineLock = `
		SELECT tenant_id, owner_id, owner_label, owner_device_id, locked_at, expires_at
		FROM offline_locks
		WHERE tenant_id = ?;`

	selectAllOfflineLocks = `
		SELECT tenant_id, owner_id, owner_label, owner_device_id, locked_at, expires_at
		FROM offline_locks
		ORDER BY tenant_id;`

	deleteOfflineLock = `DELETE FROM offline_locks WHERE tenant_id = ?;`

	deleteAllOfflineLocks = `DELETE FROM offline_locks;`

	selectDeviceIdentity = `SELECT device_id, created_at FROM device_identity WHERE id = 1;`

	insertDeviceIdentity = `INSERT INTO device_identity (id, device_id, created_at) VALUES (1, ?, ?);`
)

// buildSelectQueueItems builds a tenant-scoped queue query in strict replay
// order (enqueue time, then id as the tie-breaker). Without statuses the
// query matches every item of the tenant.
func buildSelectQueueItems(tenantID string, statuses ...models.QueueStatus) (string, []any, error) {
	q := sb.Select(queueColumns).
		From("sync_queue").
		Where(squirrel.Eq{"tenant_id": tenantID})

	if len(statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": statuses})
	}

	return q.OrderBy("enqueued_at ASC", "id ASC").ToSql()
}

func buildSelectQueueItem(id string) (string, []any, error) {
	return sb.Select(queueColumns).
		From("sync_queue").
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildUpdateQueueStatus builds the status transition statement. A non-empty
// errMsg marks a failed attempt: retry_count is bumped and the error message
// recorded for introspection.
func buildUpdateQueueStatus(id string, status models.QueueStatus, errMsg string, attemptAt time.Time) (string, []any, error) {
	q := sb.Update("sync_queue").
		Set("status", string(status)).
		Set("last_attempt_at", attemptAt)

	if errMsg != "" {
		q = q.Set("retry_count", squirrel.Expr("retry_count + 1")).
			Set("last_error", errMsg)
	}

	return q.Where(squirrel.Eq{"id": id}).ToSql()
}

func buildDeleteQueueItem(id string) (string, []any, error) {
	return sb.Delete("sync_queue").Where(squirrel.Eq{"id": id}).ToSql()
}

func buildDeleteQueueByStatus(tenantID string, statuses ...models.QueueStatus) (string, []any, error) {
	q := sb.Delete("sync_queue").Where(squirrel.Eq{"tenant_id": tenantID})

	if len(statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": statuses})
	}

	return q.ToSql()
}

// buildCancelPendingByEntity matches the tenant's queued work for one entity
// that has not completed yet. Delete-action items are excluded: a queued
// delete must still replicate even when the entity is gone locally.
func buildCancelPendingByEntity(tenantID, operationType, entityID string) (string, []any, error) {
	return sb.Delete("sync_queue").
		Where(squirrel.Eq{
			"tenant_id":      tenantID,
			"operation_type": operationType,
			"entity_id":      entityID,
		}).
		Where(squirrel.NotEq{"status": models.StatusCompleted}).
		Where(squirrel.NotEq{"action": models.ActionDelete}).
		ToSql()
}

func buildCountQueueByStatus(tenantID string, status models.QueueStatus) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From("sync_queue").
		Where(squirrel.Eq{"tenant_id": tenantID, "status": status}).
		ToSql()
}
