package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/models"
)

type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *queueRepository) Enqueue(ctx context.Context, tenantID, userID, deviceID, operationType string, action models.QueueAction, payload json.RawMessage) (string, error) {
	log := logger.FromContext(ctx)

	entityID, err := extractEntityID(payload)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("tenant_id", tenantID).
			Str("operation_type", operationType).
			Msg("rejected queue item with invalid payload")
		return "", err
	}

	id := newID()
	_, execErr := q.DB.ExecContext(ctx, insertQueueItem,
		id,
		tenantID,
		userID,
		deviceID,
		operationType,
		string(action),
		[]byte(payload),
		entityID,
		time.Now().UTC(),
		string(models.StatusPending),
	)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "queueRepository.Enqueue").
			Str("tenant_id", tenantID).
			Str("operation_type", operationType).
			Msg("failed to insert queue item")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return id, nil
}

func (q *queueRepository) GetItem(ctx context.Context, id string) (models.QueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQueueItem(id)
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := q.DB.QueryRowContext(ctx, query, args...)
	item, scanErr := scanQueueItem(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.QueueItem{}, fmt.Errorf("%w: id=%s", ErrQueueItemNotFound, id)
		}
		log.Err(scanErr).
			Str("func", "queueRepository.GetItem").
			Str("id", id).
			Msg("failed to scan queue item row")
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return item, nil
}

func (q *queueRepository) GetPendingItems(ctx context.Context, tenantID string) ([]models.QueueItem, error) {
	return q.getItems(ctx, "queueRepository.GetPendingItems", tenantID, models.StatusPending)
}

func (q *queueRepository) GetAllItems(ctx context.Context, tenantID string) ([]models.QueueItem, error) {
	return q.getItems(ctx, "queueRepository.GetAllItems", tenantID)
}

func (q *queueRepository) getItems(ctx context.Context, caller, tenantID string, statuses ...models.QueueStatus) ([]models.QueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQueueItems(tenantID, statuses...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := q.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", caller).
			Str("tenant_id", tenantID).
			Msg("failed to execute query for queue items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	items := make([]models.QueueItem, 0, 50)

	for rows.Next() {
		item, scanErr := scanQueueItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Str("tenant_id", tenantID).
				Msg("failed to scan queue item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", caller).
			Str("tenant_id", tenantID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (q *queueRepository) UpdateStatus(ctx context.Context, id string, status models.QueueStatus, errMsg string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQueueStatus(id, status, errMsg, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, execErr := q.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "queueRepository.UpdateStatus").
			Str("id", id).
			Str("status", string(status)).
			Msg("failed to update queue item status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, raErr := res.RowsAffected()
	if raErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, raErr)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrQueueItemNotFound, id)
	}

	return nil
}

func (q *queueRepository) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQueueItem(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, execErr := q.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "queueRepository.Remove").
			Str("id", id).
			Msg("failed to delete queue item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, raErr := res.RowsAffected()
	if raErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, raErr)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrQueueItemNotFound, id)
	}

	return nil
}

func (q *queueRepository) ClearCompleted(ctx context.Context, tenantID string) (int64, error) {
	return q.deleteByStatus(ctx, "queueRepository.ClearCompleted", tenantID, models.StatusCompleted)
}

func (q *queueRepository) ClearAll(ctx context.Context, tenantID string) (int64, error) {
	return q.deleteByStatus(ctx, "queueRepository.ClearAll", tenantID)
}

func (q *queueRepository) deleteByStatus(ctx context.Context, caller, tenantID string, statuses ...models.QueueStatus) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQueueByStatus(tenantID, statuses...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, execErr := q.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", caller).
			Str("tenant_id", tenantID).
			Msg("failed to delete queue items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, raErr := res.RowsAffected()
	if raErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, raErr)
	}

	return affected, nil
}

func (q *queueRepository) RemovePendingByEntity(ctx context.Context, tenantID, operationType, entityID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCancelPendingByEntity(tenantID, operationType, entityID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, execErr := q.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "queueRepository.RemovePendingByEntity").
			Str("tenant_id", tenantID).
			Str("operation_type", operationType).
			Str("entity_id", entityID).
			Msg("failed to cancel queued items for entity")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, raErr := res.RowsAffected()
	if raErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, raErr)
	}

	return affected, nil
}

func (q *queueRepository) PendingCount(ctx context.Context, tenantID string) (int64, error) {
	return q.countByStatus(ctx, tenantID, models.StatusPending)
}

func (q *queueRepository) FailedCount(ctx context.Context, tenantID string) (int64, error) {
	return q.countByStatus(ctx, tenantID, models.StatusFailed)
}

func (q *queueRepository) countByStatus(ctx context.Context, tenantID string, status models.QueueStatus) (int64, error) {
	query, args, err := buildCountQueueByStatus(tenantID, status)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if scanErr := q.DB.QueryRowContext(ctx, query, args...).Scan(&count); scanErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanQueueItem(s scanner) (models.QueueItem, error) {
	var (
		item          models.QueueItem
		action        string
		status        string
		payload       []byte
		lastAttemptAt sql.NullTime
	)

	err := s.Scan(
		&item.ID,
		&item.TenantID,
		&item.UserID,
		&item.DeviceID,
		&item.OperationType,
		&action,
		&payload,
		&item.EntityID,
		&item.EnqueuedAt,
		&item.RetryCount,
		&status,
		&lastAttemptAt,
		&item.LastError,
	)
	if err != nil {
		return models.QueueItem{}, err
	}

	item.Action = models.QueueAction(action)
	item.Status = models.QueueStatus(status)
	item.Payload = json.RawMessage(payload)
	if lastAttemptAt.Valid {
		t := lastAttemptAt.Time
		item.LastAttemptAt = &t
	}

	return item, nil
}

// extractEntityID pulls the top-level "id" field out of an opaque payload.
// Payloads without an id are legal (the entity cancellation path just never
// matches them); payloads that are not JSON objects are rejected.
func extractEntityID(payload json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", ErrInvalidPayload
	}

	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return probe.ID, nil
}
