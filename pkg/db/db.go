// Package db provides episode persistence shared by the monitor and the
// backend server. PostgreSQL is the primary store; when it is unreachable at
// startup the store falls back to an embedded SQLite database so the monitor
// keeps running on a single host.
package db

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

// database modes
const (
	ModePostgres = "postgres"
	ModeSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Mode            string
	DSN             string // SQLite DSN, also the fallback target
	PostgresDSN     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB wraps the episode store with its active driver
type DB struct {
	conn   *sqlx.DB
	driver string
}

// New opens the episode store. In postgres mode an unreachable server
// degrades to the SQLite fallback with a warning instead of failing.
func New(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.Mode == ModePostgres {
		conn, err := openPostgres(ctx, cfg)
		if err == nil {
			return conn, nil
		}
		lgr.Printf("[WARN] postgres unavailable, falling back to sqlite: %v", err)
	}
	return openSQLite(ctx, cfg)
}

func openPostgres(ctx context.Context, cfg Config) (*DB, error) {
	conn, err := sqlx.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	configurePool(conn, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	res := &DB{conn: conn, driver: "postgres"}
	if err := res.initSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return res, nil
}

func openSQLite(ctx context.Context, cfg Config) (*DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = "file:boostwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	configurePool(conn, cfg)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	res := &DB{conn: conn, driver: "sqlite"}
	if err := res.initSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return res, nil
}

func configurePool(conn *sqlx.DB, cfg Config) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// initSchema creates tables if they don't exist
func (d *DB) initSchema(ctx context.Context) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := d.conn.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Driver reports the active driver name, "postgres" or "sqlite"
func (d *DB) Driver() string { return d.driver }

// Close closes the database connection
func (d *DB) Close() error { return d.conn.Close() }

// Ping verifies the database connection
func (d *DB) Ping(ctx context.Context) error { return d.conn.PingContext(ctx) }

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
