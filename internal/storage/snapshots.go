package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/conspirant/kcet-planner-go/internal/options"
)

// SnapshotVersion is written into every persisted payload so future schema
// changes can migrate old snapshots instead of discarding them.
const SnapshotVersion = 1

// snapshotPayload is the JSON stored in option_snapshots.payload.
type snapshotPayload struct {
	Version int             `json:"version"`
	Options []options.Entry `json:"options"`
}

// SaveOptions overwrites the full option snapshot for a profile.
func (db *DB) SaveOptions(ctx context.Context, profileID string, entries []options.Entry) error {
	if entries == nil {
		entries = []options.Entry{}
	}
	payload, err := json.Marshal(snapshotPayload{Version: SnapshotVersion, Options: entries})
	if err != nil {
		return fmt.Errorf("failed to encode option snapshot: %w", err)
	}

	query := `
	INSERT INTO option_snapshots (profile_id, version, payload, saved_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(profile_id) DO UPDATE SET
		version = excluded.version,
		payload = excluded.payload,
		saved_at = excluded.saved_at
	`
	if _, err := db.conn.ExecContext(ctx, query, profileID, SnapshotVersion, string(payload), time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save option snapshot: %w", err)
	}
	return nil
}

// LoadOptions returns the persisted snapshot for a profile. A missing row
// or an unreadable payload yields an empty slice and no error: absent data
// is a normal state, not a failure. The second return reports whether the
// stored payload had to be discarded as malformed.
func (db *DB) LoadOptions(ctx context.Context, profileID string) ([]options.Entry, bool, error) {
	var raw string
	query := `SELECT payload FROM option_snapshots WHERE profile_id = ?`
	err := db.conn.QueryRowContext(ctx, query, profileID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []options.Entry{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load option snapshot: %w", err)
	}

	var payload snapshotPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return []options.Entry{}, true, nil
	}
	if payload.Options == nil {
		return []options.Entry{}, false, nil
	}
	return payload.Options, false, nil
}

// DeleteOptions removes the snapshot for a profile. Deleting a snapshot
// that does not exist is not an error.
func (db *DB) DeleteOptions(ctx context.Context, profileID string) error {
	query := `DELETE FROM option_snapshots WHERE profile_id = ?`
	if _, err := db.conn.ExecContext(ctx, query, profileID); err != nil {
		return fmt.Errorf("failed to delete option snapshot: %w", err)
	}
	return nil
}

// CountSnapshots returns the number of stored snapshots.
func (db *DB) CountSnapshots(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM option_snapshots`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}
