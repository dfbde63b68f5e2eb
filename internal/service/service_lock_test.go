// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/mock"
	"github.com/akudrin/offsync/internal/service"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/models"
)

func newTestArbiter(t *testing.T, ctrl *gomock.Controller, cfg config.Lock) (service.LockArbiter, *mock.MockLockRepository, *mock.MockStatusSource) {
	t.Helper()
	mockLocks := mock.NewMockLockRepository(ctrl)
	mockStatus := mock.NewMockStatusSource(ctrl)

	a := service.NewLockArbiter(mockLocks, mockStatus, cfg, logger.Nop())
	a.SetUserContext("user-a", "Alice", "tenant-1")
	a.SetDeviceID("device-1")
	return a, mockLocks, mockStatus
}

func TestHandleOffline_AcquiresWhenNoLockExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{TTL: time.Hour})
	ctx := context.Background()

	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(models.OfflineLock{}, store.ErrLockNotFound)
	mockLocks.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, lock models.OfflineLock) error {
		assert.Equal(t, "tenant-1", lock.TenantID)
		assert.Equal(t, "user-a", lock.OwnerID)
		assert.Equal(t, "Alice", lock.OwnerLabel)
		assert.Equal(t, "device-1", lock.OwnerDeviceID)
		assert.False(t, lock.LockedAt.IsZero())
		assert.WithinDuration(t, lock.LockedAt.Add(time.Hour), lock.ExpiresAt, time.Second)
		return nil
	})

	require.NoError(t, a.HandleOffline(ctx))
}

func TestHandleOffline_RefreshesOwnLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	existing := models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-a", LockedAt: time.Now().Add(-time.Hour)}
	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(existing, nil)
	mockLocks.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, lock models.OfflineLock) error {
		assert.Equal(t, "user-a", lock.OwnerID)
		assert.True(t, lock.LockedAt.After(existing.LockedAt))
		assert.True(t, lock.ExpiresAt.IsZero())
		return nil
	})

	require.NoError(t, a.HandleOffline(ctx))
}

func TestHandleOffline_ForeignLiveLockIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	foreign := models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-b", LockedAt: time.Now()}
	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(foreign, nil)

	require.NoError(t, a.HandleOffline(ctx))
}

func TestHandleOffline_ExpiredForeignLockIsReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{TTL: time.Hour})
	ctx := context.Background()

	expired := models.OfflineLock{
		TenantID:  "tenant-1",
		OwnerID:   "user-b",
		LockedAt:  time.Now().Add(-3 * time.Hour),
		ExpiresAt: time.Now().Add(-2 * time.Hour),
	}
	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(expired, nil)
	mockLocks.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, lock models.OfflineLock) error {
		assert.Equal(t, "user-a", lock.OwnerID)
		return nil
	})

	require.NoError(t, a.HandleOffline(ctx))
}

func TestHandleOffline_NoUserContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocks := mock.NewMockLockRepository(ctrl)
	mockStatus := mock.NewMockStatusSource(ctrl)
	a := service.NewLockArbiter(mockLocks, mockStatus, config.Lock{}, logger.Nop())

	err := a.HandleOffline(context.Background())

	assert.ErrorIs(t, err, service.ErrNoUserContext)
}

func TestHandleOnline_ReleasesOwnLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	own := models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-a", LockedAt: time.Now()}
	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(own, nil)
	mockLocks.EXPECT().Delete(ctx, "tenant-1").Return(nil)

	require.NoError(t, a.HandleOnline(ctx))
}

func TestHandleOnline_ForeignLockLeftInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	foreign := models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-b", LockedAt: time.Now()}
	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(foreign, nil)

	require.NoError(t, a.HandleOnline(ctx))
}

func TestHandleOnline_NoLockIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(models.OfflineLock{}, store.ErrLockNotFound)

	require.NoError(t, a.HandleOnline(ctx))
}

func TestHasOfflineWriteAccess_AlwaysTrueWhileOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _, mockStatus := newTestArbiter(t, ctrl, config.Lock{})
	mockStatus.EXPECT().IsOnline().Return(true)

	ok, err := a.HasOfflineWriteAccess(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasOfflineWriteAccess_Offline(t *testing.T) {
	tests := []struct {
		name string
		lock models.OfflineLock
		err  error
		want bool
	}{
		{
			name: "no lock",
			err:  store.ErrLockNotFound,
			want: true,
		},
		{
			name: "own lock",
			lock: models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-a", LockedAt: time.Now()},
			want: true,
		},
		{
			name: "foreign live lock",
			lock: models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-b", LockedAt: time.Now()},
			want: false,
		},
		{
			name: "foreign expired lock",
			lock: models.OfflineLock{
				TenantID:  "tenant-1",
				OwnerID:   "user-b",
				LockedAt:  time.Now().Add(-2 * time.Hour),
				ExpiresAt: time.Now().Add(-time.Hour),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockLocks, mockStatus := newTestArbiter(t, ctrl, config.Lock{})
			ctx := context.Background()

			mockStatus.EXPECT().IsOnline().Return(false)
			mockLocks.EXPECT().Get(ctx, "tenant-1").Return(tt.lock, tt.err)

			ok, err := a.HasOfflineWriteAccess(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestGetOfflineLockOwner_NilWhileOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _, mockStatus := newTestArbiter(t, ctrl, config.Lock{})
	mockStatus.EXPECT().IsOnline().Return(true)

	owner, err := a.GetOfflineLockOwner(context.Background())

	require.NoError(t, err)
	assert.Nil(t, owner)
}

func TestGetOfflineLockOwner_ReturnsForeignHolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, mockStatus := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	mockStatus.EXPECT().IsOnline().Return(false)
	foreign := models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-b", OwnerLabel: "Bob", LockedAt: time.Now()}
	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(foreign, nil)

	owner, err := a.GetOfflineLockOwner(ctx)

	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "user-b", owner.ID)
	assert.Equal(t, "Bob", owner.Label)
}

func TestGetOfflineLockOwner_NilForOwnLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, mockStatus := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	mockStatus.EXPECT().IsOnline().Return(false)
	own := models.OfflineLock{TenantID: "tenant-1", OwnerID: "user-a", LockedAt: time.Now()}
	mockLocks.EXPECT().Get(ctx, "tenant-1").Return(own, nil)

	owner, err := a.GetOfflineLockOwner(ctx)

	require.NoError(t, err)
	assert.Nil(t, owner)
}

func TestIsTenantLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	mockLocks.EXPECT().Get(ctx, "tenant-2").Return(models.OfflineLock{TenantID: "tenant-2", OwnerID: "user-b", LockedAt: time.Now()}, nil)
	locked, err := a.IsTenantLocked(ctx, "tenant-2")
	require.NoError(t, err)
	assert.True(t, locked)

	mockLocks.EXPECT().Get(ctx, "tenant-3").Return(models.OfflineLock{}, store.ErrLockNotFound)
	locked, err = a.IsTenantLocked(ctx, "tenant-3")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestReleaseOfflineLock_IgnoresOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockLocks, _ := newTestArbiter(t, ctrl, config.Lock{})
	ctx := context.Background()

	mockLocks.EXPECT().Delete(ctx, "tenant-1").Return(nil)

	require.NoError(t, a.ReleaseOfflineLock(ctx, "tenant-1"))
}

// fakeLockRepo is an in-memory LockRepository for multi-identity scenarios.
type fakeLockRepo struct {
	mu    sync.Mutex
	locks map[string]models.OfflineLock
}

func newFakeLockRepo() *fakeLockRepo {
	return &fakeLockRepo{locks: make(map[string]models.OfflineLock)}
}

func (r *fakeLockRepo) Get(_ context.Context, tenantID string) (models.OfflineLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[tenantID]
	if !ok {
		return models.OfflineLock{}, store.ErrLockNotFound
	}
	return lock, nil
}

func (r *fakeLockRepo) Upsert(_ context.Context, lock models.OfflineLock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locks[lock.TenantID] = lock
	return nil
}

func (r *fakeLockRepo) Delete(_ context.Context, tenantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.locks[tenantID]; !ok {
		return store.ErrLockNotFound
	}
	delete(r.locks, tenantID)
	return nil
}

func (r *fakeLockRepo) GetAll(_ context.Context) ([]models.OfflineLock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.OfflineLock, 0, len(r.locks))
	for _, lock := range r.locks {
		out = append(out, lock)
	}
	return out, nil
}

func (r *fakeLockRepo) ClearAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.locks))
	r.locks = make(map[string]models.OfflineLock)
	return n, nil
}

// offlineStatus always reports offline.
type offlineStatus struct{}

func (offlineStatus) IsOnline() bool { return false }

func TestSingleWriterArbitration(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLockRepo()

	arbiterA := service.NewLockArbiter(repo, offlineStatus{}, config.Lock{}, logger.Nop())
	arbiterA.SetUserContext("user-a", "Alice", "tenant-1")

	arbiterB := service.NewLockArbiter(repo, offlineStatus{}, config.Lock{}, logger.Nop())
	arbiterB.SetUserContext("user-b", "Bob", "tenant-1")

	// A goes offline first and takes the lock.
	require.NoError(t, arbiterA.HandleOffline(ctx))
	okA, err := arbiterA.HasOfflineWriteAccess(ctx)
	require.NoError(t, err)
	assert.True(t, okA)

	// B goes offline second and is read-only.
	require.NoError(t, arbiterB.HandleOffline(ctx))
	okB, err := arbiterB.HasOfflineWriteAccess(ctx)
	require.NoError(t, err)
	assert.False(t, okB)

	owner, err := arbiterB.GetOfflineLockOwner(ctx)
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "user-a", owner.ID)
	assert.Equal(t, "Alice", owner.Label)

	// A returns online and releases the lock.
	require.NoError(t, arbiterA.HandleOnline(ctx))
	locked, err := arbiterB.IsTenantLocked(ctx, "tenant-1")
	require.NoError(t, err)
	assert.False(t, locked)

	// B can now acquire it.
	require.NoError(t, arbiterB.HandleOffline(ctx))
	okB, err = arbiterB.HasOfflineWriteAccess(ctx)
	require.NoError(t, err)
	assert.True(t, okB)

	lock, err := arbiterB.GetOfflineLock(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "user-b", lock.OwnerID)
}
