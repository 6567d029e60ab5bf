package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/lostfound/internal/db"
)

func TestGetSessionSecretIsStable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := GetSessionSecret(ctx, database)
	require.NoError(t, err)
	assert.Len(t, first, 64)

	again, err := GetSessionSecret(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestGetSessionSecretKeepsStoredValue(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := database.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES ('session_secret', 'from-an-earlier-run')`)
	require.NoError(t, err)

	secret, err := GetSessionSecret(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, "from-an-earlier-run", secret)
}
