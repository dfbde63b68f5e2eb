// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

// Package migrations applies the embedded goose schema migrations to the
// local replication database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations against db using the sqlite3 dialect.
// Go-based migrations in this package (the legacy lock-state import) are
// registered via their init functions and applied in version order alongside
// the SQL files.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
