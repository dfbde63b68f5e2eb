// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/models"
)

type lockArbiter struct {
	locks  store.LockRepository
	status StatusSource
	ttl    time.Duration
	logger *logger.Logger

	mu        sync.RWMutex
	userID    string
	userLabel string
	tenantID  string
	deviceID  string
}

// NewLockArbiter creates the offline write-lock arbiter. A non-positive TTL
// disables lock expiry.
func NewLockArbiter(locks store.LockRepository, status StatusSource, cfg config.Lock, log *logger.Logger) LockArbiter {
	ttl := cfg.TTL
	if ttl < 0 {
		ttl = 0
	}

	return &lockArbiter{
		locks:  locks,
		status: status,
		ttl:    ttl,
		logger: log,
	}
}

func (a *lockArbiter) SetUserContext(userID, userLabel, tenantID string) {
	a.mu.Lock()
	a.userID = userID
	a.userLabel = userLabel
	a.tenantID = tenantID
	a.mu.Unlock()
}

func (a *lockArbiter) SetDeviceID(deviceID string) {
	a.mu.Lock()
	a.deviceID = deviceID
	a.mu.Unlock()
}

func (a *lockArbiter) context() (userID, userLabel, tenantID, deviceID string, err error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.userID == "" || a.tenantID == "" {
		return "", "", "", "", ErrNoUserContext
	}
	return a.userID, a.userLabel, a.tenantID, a.deviceID, nil
}

// HandleOffline implements LockArbiter. An expired lock is treated as
// absent and replaced.
func (a *lockArbiter) HandleOffline(ctx context.Context) error {
	userID, userLabel, tenantID, deviceID, err := a.context()
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx).With().
		Str("func", "lockArbiter.HandleOffline").
		Str("tenant_id", tenantID).
		Str("user_id", userID).
		Logger()

	current, err := a.locks.Get(ctx, tenantID)
	switch {
	case errors.Is(err, store.ErrLockNotFound):
		// acquire below
	case err != nil:
		return fmt.Errorf("get offline lock: %w", err)
	case current.OwnerID != userID && !current.Expired(time.Now()):
		log.Info().
			Str("owner_id", current.OwnerID).
			Msg("tenant already locked by another identity, staying read-only")
		return nil
	}

	now := time.Now()
	lock := models.OfflineLock{
		TenantID:      tenantID,
		OwnerID:       userID,
		OwnerLabel:    userLabel,
		OwnerDeviceID: deviceID,
		LockedAt:      now,
	}
	if a.ttl > 0 {
		lock.ExpiresAt = now.Add(a.ttl)
	}

	if err = a.locks.Upsert(ctx, lock); err != nil {
		return fmt.Errorf("upsert offline lock: %w", err)
	}

	log.Info().Time("expires_at", lock.ExpiresAt).Msg("offline lock acquired")
	return nil
}

func (a *lockArbiter) HandleOnline(ctx context.Context) error {
	userID, _, tenantID, _, err := a.context()
	if err != nil {
		return err
	}

	current, err := a.locks.Get(ctx, tenantID)
	if errors.Is(err, store.ErrLockNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get offline lock: %w", err)
	}
	if current.OwnerID != userID {
		return nil
	}

	if err = a.locks.Delete(ctx, tenantID); err != nil && !errors.Is(err, store.ErrLockNotFound) {
		return fmt.Errorf("delete offline lock: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "lockArbiter.HandleOnline").
		Str("tenant_id", tenantID).
		Str("user_id", userID).
		Msg("offline lock released")

	return nil
}

func (a *lockArbiter) HasOfflineWriteAccess(ctx context.Context) (bool, error) {
	if a.status.IsOnline() {
		return true, nil
	}

	userID, _, tenantID, _, err := a.context()
	if err != nil {
		return false, err
	}

	current, err := a.locks.Get(ctx, tenantID)
	if errors.Is(err, store.ErrLockNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("get offline lock: %w", err)
	}
	if current.Expired(time.Now()) {
		return true, nil
	}

	return current.OwnerID == userID, nil
}

func (a *lockArbiter) GetOfflineLockOwner(ctx context.Context) (*models.LockOwner, error) {
	if a.status.IsOnline() {
		return nil, nil
	}

	userID, _, tenantID, _, err := a.context()
	if err != nil {
		return nil, err
	}

	current, err := a.locks.Get(ctx, tenantID)
	if errors.Is(err, store.ErrLockNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get offline lock: %w", err)
	}
	if current.Expired(time.Now()) || current.OwnerID == userID {
		return nil, nil
	}

	return &models.LockOwner{ID: current.OwnerID, Label: current.OwnerLabel}, nil
}

func (a *lockArbiter) GetOfflineLock(ctx context.Context, tenantID string) (models.OfflineLock, error) {
	return a.locks.Get(ctx, tenantID)
}

func (a *lockArbiter) IsTenantLocked(ctx context.Context, tenantID string) (bool, error) {
	current, err := a.locks.Get(ctx, tenantID)
	if errors.Is(err, store.ErrLockNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get offline lock: %w", err)
	}

	return !current.Expired(time.Now()), nil
}

func (a *lockArbiter) ReleaseOfflineLock(ctx context.Context, tenantID string) error {
	if err := a.locks.Delete(ctx, tenantID); err != nil {
		return fmt.Errorf("delete offline lock: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "lockArbiter.ReleaseOfflineLock").
		Str("tenant_id", tenantID).
		Msg("offline lock force released")

	return nil
}

func (a *lockArbiter) GetAllOfflineLocks(ctx context.Context) ([]models.OfflineLock, error) {
	return a.locks.GetAll(ctx)
}

func (a *lockArbiter) ClearAllOfflineLocks(ctx context.Context) (int64, error) {
	return a.locks.ClearAll(ctx)
}
