package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akudrin/offsync/internal/logger"
)

func newTestIdentityRepo(t *testing.T) (IdentityRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewIdentityRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestIdentityRepository_ReturnsExistingIdentity(t *testing.T) {
	repo, mock := newTestIdentityRepo(t)
	created := time.Now().Truncate(time.Millisecond)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT device_id, created_at FROM device_identity")).
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "created_at"}).
			AddRow("device-abc", created))

	identity, err := repo.DeviceIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "device-abc", identity.ID)
	assert.WithinDuration(t, created, identity.CreatedAt, time.Millisecond)
}

func TestIdentityRepository_GeneratesOnFirstCall(t *testing.T) {
	repo, mock := newTestIdentityRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT device_id, created_at FROM device_identity")).
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "created_at"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_identity")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	identity, err := repo.DeviceIdentity(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, identity.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityRepository_InsertFailure(t *testing.T) {
	repo, mock := newTestIdentityRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT device_id, created_at FROM device_identity")).
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "created_at"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_identity")).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.DeviceIdentity(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExecutingStatement))
}
