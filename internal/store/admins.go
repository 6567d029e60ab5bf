package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/lostfound/internal/model"
)

// GetAdminByUsername returns an admin by username, or nil if none matches.
func GetAdminByUsername(ctx context.Context, db *sql.DB, username string) (*model.Admin, error) {
	a := &model.Admin{}
	err := db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting admin by username: %w", err)
	}
	return a, nil
}

// CountAdmins returns the number of admin accounts.
func CountAdmins(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return n, nil
}

// EnsureAdmin creates the given admin only if no admin account exists yet.
// It reports whether a row was inserted. The check and the insert are a
// single statement, so concurrent startups cannot both seed.
func EnsureAdmin(ctx context.Context, db *sql.DB, username, passwordHash string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash)
		 SELECT ?, ? WHERE NOT EXISTS (SELECT 1 FROM admins)`,
		username, passwordHash,
	)
	if err != nil {
		return false, fmt.Errorf("seeding admin: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking seeded admin: %w", err)
	}
	return n > 0, nil
}
