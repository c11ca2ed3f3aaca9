package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Paid features a profile can hold an entitlement for.
const (
	FeaturePDF       = "paid_pdf"
	FeatureAnalytics = "paid_analytics"
)

// ValidFeature reports whether the feature name is one the service sells.
func ValidFeature(feature string) bool {
	return feature == FeaturePDF || feature == FeatureAnalytics
}

// GrantEntitlement records that a profile unlocked a feature, keeping the
// order and payment ids for audit. Granting twice is a no-op upsert.
func (db *DB) GrantEntitlement(ctx context.Context, profileID, feature, orderID, paymentID string) error {
	if !ValidFeature(feature) {
		return fmt.Errorf("unknown feature %q", feature)
	}

	query := `
	INSERT INTO entitlements (profile_id, feature, granted_at, order_id, payment_id)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(profile_id, feature) DO UPDATE SET
		granted_at = excluded.granted_at,
		order_id = excluded.order_id,
		payment_id = excluded.payment_id
	`
	if _, err := db.conn.ExecContext(ctx, query, profileID, feature, time.Now().Unix(), orderID, paymentID); err != nil {
		return fmt.Errorf("failed to grant entitlement: %w", err)
	}
	return nil
}

// HasEntitlement reports whether a profile holds a feature entitlement.
func (db *DB) HasEntitlement(ctx context.Context, profileID, feature string) (bool, error) {
	var one int
	query := `SELECT 1 FROM entitlements WHERE profile_id = ? AND feature = ?`
	err := db.conn.QueryRowContext(ctx, query, profileID, feature).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check entitlement: %w", err)
	}
	return true, nil
}

// Entitlements returns all features granted to a profile.
func (db *DB) Entitlements(ctx context.Context, profileID string) ([]string, error) {
	query := `SELECT feature FROM entitlements WHERE profile_id = ? ORDER BY feature`
	rows, err := db.conn.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var features []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("failed to scan entitlement: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entitlements: %w", err)
	}
	return features, nil
}
