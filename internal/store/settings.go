package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

const sessionSecretKey = "session_secret"

// GetSessionSecret returns the cookie signing key kept in settings. The first
// caller stores a fresh random key; later callers, including a second server
// starting at the same moment, get that same key back.
func GetSessionSecret(ctx context.Context, db *sql.DB) (string, error) {
	fresh, err := randomSecret()
	if err != nil {
		return "", err
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT (key) DO NOTHING`,
		sessionSecretKey, fresh,
	); err != nil {
		return "", fmt.Errorf("saving session secret: %w", err)
	}

	var secret string
	if err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, sessionSecretKey,
	).Scan(&secret); err != nil {
		return "", fmt.Errorf("loading session secret: %w", err)
	}
	return secret, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
