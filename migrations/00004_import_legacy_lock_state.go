package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upImportLegacyLockState, downImportLegacyLockState)
}

// upImportLegacyLockState copies rows out of the legacy flat key-value lock
// table (offline_lock_state: tenant_id, owner_id, owner_label, locked_at)
// into offline_locks and drops the legacy table. Installations that never
// ran the old storage format skip this migration silently.
func upImportLegacyLockState(ctx context.Context, tx *sql.Tx) error {
	var name string
	err := tx.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'offline_lock_state';`,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check legacy lock table: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO offline_locks (tenant_id, owner_id, owner_label, locked_at)
		SELECT tenant_id, owner_id, owner_label, locked_at FROM offline_lock_state;`)
	if err != nil {
		return fmt.Errorf("import legacy lock state: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DROP TABLE offline_lock_state;`); err != nil {
		return fmt.Errorf("drop legacy lock table: %w", err)
	}

	return nil
}

func downImportLegacyLockState(ctx context.Context, tx *sql.Tx) error {
	// Legacy data is folded into offline_locks; there is nothing to restore.
	return nil
}
