// Package config resolves server settings from flags, the environment and an
// optional .env file. Flags win over the environment.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Session store backends.
const (
	SessionStoreSQL   = "sql"
	SessionStoreRedis = "redis"
)

// Config holds all settings for the server.
type Config struct {
	DBPath        string
	Addr          string
	SessionSecret string
	LogPath       string
	SessionStore  string
	RedisAddr     string
	AdminUser     string
	AdminPassword string
	SecureCookie  bool
}

const usage = `Usage: lostfound [flags]

Flags:
  -d, -db <path>            SQLite database path (env DATABASE_URL, default: lostfound.sqlite3)
  -a, -addr <host:port>     listen address (env PORT, default: :3000)
  -s, -secret <key>         session cookie signing key (env SESSION_SECRET)
  -l, -log <path>           log file path (env LOG_FILE, default: stdout/stderr only)
  -session-store <sql|redis> where sessions live (env SESSION_STORE, default: sql)
  -redis <host:port>        Redis address for -session-store=redis (env REDIS_ADDR)
  -admin-user <name>        admin seeded on first run (env ADMIN_USERNAME, default: admin)
  -admin-password <pw>      password for the seeded admin (env ADMIN_PASSWORD, default: admin123)
  -secure-cookie            mark the session cookie HTTPS-only (env SECURE_COOKIE)
  -h, -help                 show this help and exit
`

// Load parses args (without the program name). A .env file in the working
// directory is loaded first if present; it never overrides real environment
// variables. flag.ErrHelp is returned when help was requested.
func Load(args []string, output io.Writer) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	addr := ":3000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	fs := flag.NewFlagSet("lostfound", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { fmt.Fprint(output, usage) }

	dbPath := getEnv("DATABASE_URL", "lostfound.sqlite3")
	fs.StringVar(&cfg.DBPath, "db", dbPath, "")
	fs.StringVar(&cfg.DBPath, "d", dbPath, "")

	fs.StringVar(&cfg.Addr, "addr", addr, "")
	fs.StringVar(&cfg.Addr, "a", addr, "")

	secret := os.Getenv("SESSION_SECRET")
	fs.StringVar(&cfg.SessionSecret, "secret", secret, "")
	fs.StringVar(&cfg.SessionSecret, "s", secret, "")

	logPath := os.Getenv("LOG_FILE")
	fs.StringVar(&cfg.LogPath, "log", logPath, "")
	fs.StringVar(&cfg.LogPath, "l", logPath, "")

	fs.StringVar(&cfg.SessionStore, "session-store", getEnv("SESSION_STORE", SessionStoreSQL), "")
	fs.StringVar(&cfg.RedisAddr, "redis", getEnv("REDIS_ADDR", "localhost:6379"), "")
	fs.StringVar(&cfg.AdminUser, "admin-user", getEnv("ADMIN_USERNAME", "admin"), "")
	fs.StringVar(&cfg.AdminPassword, "admin-password", getEnv("ADMIN_PASSWORD", "admin123"), "")
	fs.BoolVar(&cfg.SecureCookie, "secure-cookie", getEnvBool("SECURE_COOKIE", false), "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	switch c.SessionStore {
	case SessionStoreSQL:
	case SessionStoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis session store needs a Redis address")
		}
	default:
		return fmt.Errorf("unknown session store %q (want %q or %q)", c.SessionStore, SessionStoreSQL, SessionStoreRedis)
	}
	if c.AdminUser == "" || c.AdminPassword == "" {
		return fmt.Errorf("seed admin username and password must not be empty")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
