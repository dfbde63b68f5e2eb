package store

import (
	"context"
	"fmt"

	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
)

// Storages groups the local repositories into a single value passed to the
// service layer.
type Storages struct {
	// Queue is the durable per-tenant operation queue.
	Queue QueueRepository

	// Locks is the shared offline write-lock table.
	Locks LockRepository

	// Identity owns the installation's device identity record.
	Identity IdentityRepository
}

// NewStorages initialises the local storage layer: opens the SQLite database
// at cfg.DB.DSN (creating the file if needed), runs pending schema
// migrations, and wires the repositories.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Queue:    NewQueueRepository(db, logger),
		Locks:    NewLockRepository(db, logger),
		Identity: NewIdentityRepository(db, logger),
	}, nil
}
