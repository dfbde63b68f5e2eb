package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/models"
)

type lockRepository struct {
	*DB
	logger *logger.Logger
}

func NewLockRepository(db *DB, logger *logger.Logger) LockRepository {
	return &lockRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *lockRepository) Get(ctx context.Context, tenantID string) (models.OfflineLock, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, selectOfflineLock, tenantID)

	lock, err := scanOfflineLock(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OfflineLock{}, fmt.Errorf("%w: tenant_id=%s", ErrLockNotFound, tenantID)
		}
		log.Err(err).
			Str("func", "lockRepository.Get").
			Str("tenant_id", tenantID).
			Msg("failed to scan offline lock row")
		return models.OfflineLock{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return lock, nil
}

func (l *lockRepository) Upsert(ctx context.Context, lock models.OfflineLock) error {
	log := logger.FromContext(ctx)

	var expiresAt any
	if !lock.ExpiresAt.IsZero() {
		expiresAt = lock.ExpiresAt
	}

	_, err := l.DB.ExecContext(ctx, upsertOfflineLock,
		lock.TenantID,
		lock.OwnerID,
		lock.OwnerLabel,
		lock.OwnerDeviceID,
		lock.LockedAt,
		expiresAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "lockRepository.Upsert").
			Str("tenant_id", lock.TenantID).
			Str("owner_id", lock.OwnerID).
			Msg("failed to upsert offline lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *lockRepository) Delete(ctx context.Context, tenantID string) error {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, deleteOfflineLock, tenantID)
	if err != nil {
		log.Err(err).
			Str("func", "lockRepository.Delete").
			Str("tenant_id", tenantID).
			Msg("failed to delete offline lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, raErr := res.RowsAffected()
	if raErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, raErr)
	}
	if affected == 0 {
		return fmt.Errorf("%w: tenant_id=%s", ErrLockNotFound, tenantID)
	}

	return nil
}

func (l *lockRepository) GetAll(ctx context.Context) ([]models.OfflineLock, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := l.DB.QueryContext(ctx, selectAllOfflineLocks)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "lockRepository.GetAll").
			Msg("failed to execute query for all offline locks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	locks := make([]models.OfflineLock, 0, 8)

	for rows.Next() {
		lock, scanErr := scanOfflineLock(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "lockRepository.GetAll").
				Msg("failed to scan offline lock row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		locks = append(locks, lock)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "lockRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return locks, nil
}

func (l *lockRepository) ClearAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, deleteAllOfflineLocks)
	if err != nil {
		log.Err(err).
			Str("func", "lockRepository.ClearAll").
			Msg("failed to delete offline locks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, raErr := res.RowsAffected()
	if raErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, raErr)
	}

	return affected, nil
}

func scanOfflineLock(s scanner) (models.OfflineLock, error) {
	var (
		lock      models.OfflineLock
		expiresAt sql.NullTime
	)

	err := s.Scan(
		&lock.TenantID,
		&lock.OwnerID,
		&lock.OwnerLabel,
		&lock.OwnerDeviceID,
		&lock.LockedAt,
		&expiresAt,
	)
	if err != nil {
		return models.OfflineLock{}, err
	}

	if expiresAt.Valid {
		lock.ExpiresAt = expiresAt.Time
	}

	return lock, nil
}
