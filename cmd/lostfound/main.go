package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/erazemk/lostfound/internal/api"
	"github.com/erazemk/lostfound/internal/auth"
	"github.com/erazemk/lostfound/internal/config"
	"github.com/erazemk/lostfound/internal/db"
	"github.com/erazemk/lostfound/internal/session"
	"github.com/erazemk/lostfound/internal/store"
)

const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		return err
	}
	slog.Info("database ready", "path", cfg.DBPath)

	if err := seedAdmin(ctx, database, cfg.AdminUser, cfg.AdminPassword); err != nil {
		return err
	}

	secret, err := sessionSecret(ctx, database, cfg.SessionSecret)
	if err != nil {
		return err
	}

	sessionStore, closeStore, err := newSessionStore(ctx, cfg, database)
	if err != nil {
		return err
	}
	defer closeStore()

	sessions := session.NewManager(sessionStore, secret, cfg.SecureCookie)

	handler, err := api.NewRouter(database, sessions)
	if err != nil {
		return fmt.Errorf("setting up router: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr, "session_store", cfg.SessionStore)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}

	slog.Info("server stopped, closing database")
	return nil
}

// seedAdmin creates the admin account on a database that has none yet.
// Existing accounts are never modified.
func seedAdmin(ctx context.Context, database *sql.DB, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	created, err := store.EnsureAdmin(ctx, database, username, hash)
	if err != nil {
		return err
	}
	if !created {
		n, err := store.CountAdmins(ctx, database)
		if err != nil {
			return err
		}
		slog.Info("admin accounts present, skipping seed", "count", n)
		return nil
	}

	slog.Info("admin account created", "username", username)
	if username == defaultAdminUser && password == defaultAdminPassword {
		slog.Warn("admin account uses the default password, change it before going live")
	}
	return nil
}

// sessionSecret returns the configured signing key or, when none is set, a
// random key persisted in the database.
func sessionSecret(ctx context.Context, database *sql.DB, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	slog.Warn("no session secret configured, using the one stored in the database")
	secret, err := store.GetSessionSecret(ctx, database)
	if err != nil {
		return "", fmt.Errorf("loading session secret: %w", err)
	}
	return secret, nil
}

// newSessionStore builds the configured session backend. The returned func
// releases its resources.
func newSessionStore(ctx context.Context, cfg *config.Config, database *sql.DB) (session.Store, func(), error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		return &session.SQLStore{DB: database}, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
	}

	slog.Info("using redis session store", "addr", cfg.RedisAddr)
	return session.NewRedisStore(client), func() { client.Close() }, nil
}
