package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/models"
)

type identityRepository struct {
	*DB
	logger *logger.Logger
}

func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	return &identityRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *identityRepository) DeviceIdentity(ctx context.Context) (models.DeviceIdentity, error) {
	log := logger.FromContext(ctx)

	var identity models.DeviceIdentity
	err := r.DB.QueryRowContext(ctx, selectDeviceIdentity).Scan(&identity.ID, &identity.CreatedAt)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "identityRepository.DeviceIdentity").
			Msg("failed to read device identity")
		return models.DeviceIdentity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	identity = models.DeviceIdentity{
		ID:        newID(),
		CreatedAt: time.Now().UTC(),
	}

	if _, execErr := r.DB.ExecContext(ctx, insertDeviceIdentity, identity.ID, identity.CreatedAt); execErr != nil {
		log.Err(execErr).
			Str("func", "identityRepository.DeviceIdentity").
			Msg("failed to persist generated device identity")
		return models.DeviceIdentity{}, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	log.Info().
		Str("func", "identityRepository.DeviceIdentity").
		Str("device_id", identity.ID).
		Msg("generated new device identity")

	return identity, nil
}
