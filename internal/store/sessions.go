package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreateSession records an authenticated admin session until expiresAt.
func CreateSession(ctx context.Context, db *sql.DB, id string, expiresAt time.Time) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (id, expires_at) VALUES (?, ?)`,
		id, expiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	// Opportunistically clean up expired sessions.
	_, _ = db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now().Unix(),
	)

	return nil
}

// SessionExists reports whether a session with the given ID exists and has
// not expired.
func SessionExists(ctx context.Context, db *sql.DB, id string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE id = ? AND expires_at > ?`, id, time.Now().Unix(),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking session: %w", err)
	}
	return count > 0, nil
}

// DeleteSession removes a session. Deleting an unknown session is not an error.
func DeleteSession(ctx context.Context, db *sql.DB, id string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
