package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "PORT", "SESSION_SECRET", "LOG_FILE", "SESSION_STORE",
		"REDIS_ADDR", "ADMIN_USERNAME", "ADMIN_PASSWORD", "SECURE_COOKIE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "lostfound.sqlite3", cfg.DBPath)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Empty(t, cfg.SessionSecret)
	assert.Equal(t, SessionStoreSQL, cfg.SessionStore)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.False(t, cfg.SecureCookie)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "/var/lib/lostfound.db")
	t.Setenv("PORT", "8081")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SECURE_COOKIE", "true")

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/lostfound.db", cfg.DBPath)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.True(t, cfg.SecureCookie)
}

func TestFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err := Load([]string{"-a", "127.0.0.1:9000", "-secret", "from-flag", "-d", "test.db"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "from-flag", cfg.SessionSecret)
	assert.Equal(t, "test.db", cfg.DBPath)
}

func TestLoadRejectsBadInput(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-session-store", "memcached"}, io.Discard)
	assert.Error(t, err)

	_, err = Load([]string{"extra"}, io.Discard)
	assert.Error(t, err)

	_, err = Load([]string{"-admin-password", ""}, io.Discard)
	assert.Error(t, err)
}

func TestLoadHelp(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "not-a-bool")
	assert.True(t, getEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "0")
	assert.False(t, getEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "")
	assert.True(t, getEnvBool("TEST_BOOL", true))
}
