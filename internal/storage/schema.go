package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
// Note: WAL mode is configured in db.go.
func InitSchema(db *sql.DB) error {
	if err := createOptionSnapshotsTable(db); err != nil {
		return err
	}
	return createEntitlementsTable(db)
}

func createOptionSnapshotsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS option_snapshots (
		profile_id TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		payload TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_option_snapshots_saved_at ON option_snapshots(saved_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create option_snapshots table: %w", err)
	}

	return nil
}

func createEntitlementsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS entitlements (
		profile_id TEXT NOT NULL,
		feature TEXT NOT NULL,
		granted_at INTEGER NOT NULL,
		order_id TEXT,
		payment_id TEXT,
		PRIMARY KEY (profile_id, feature)
	);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create entitlements table: %w", err)
	}

	return nil
}
