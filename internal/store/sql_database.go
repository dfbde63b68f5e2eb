package store

import (
	"database/sql"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
