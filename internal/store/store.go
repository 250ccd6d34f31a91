package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathcoach/ent"

	// Postgres driver registered as "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
// It is opened once per process and passed to whatever needs it.
type Store struct {
	db      *sql.DB
	client  *ent.Client
	dialect string
}

// Open connects to dsn and runs auto-migration. A postgres:// or
// postgresql:// DSN selects Postgres; anything else is a SQLite path or URI.
func Open(dsn string) (*Store, error) {
	if IsPostgresDSN(dsn) {
		return open("pgx", dialect.Postgres, dsn)
	}
	return open("sqlite", dialect.SQLite, dsn)
}

func open(driver, dia, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dia == dialect.SQLite {
		// Pragmas are per connection; a single connection keeps them in force.
		db.SetMaxOpenConns(1)
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	} else if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	drv := entsql.OpenDB(dia, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client, dialect: dia}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the ent dialect name in use.
func (s *Store) Dialect() string {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// ProfileRepo returns a ProfileRepo backed by this store.
func (s *Store) ProfileRepo() ProfileRepo {
	return &profileRepo{client: s.client}
}

// TaskRepo returns a TaskRepo backed by this store.
func (s *Store) TaskRepo() TaskRepo {
	return &taskRepo{client: s.client}
}

// AttemptRepo returns an AttemptRepo backed by this store.
func (s *Store) AttemptRepo() AttemptRepo {
	return &attemptRepo{client: s.client}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client}
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// IsPostgresDSN reports whether dsn is a Postgres connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// IsFileURIDSN reports whether dsn is a SQLite "file:" URI rather than a
// plain path.
func IsFileURIDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "file:")
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHCOACH_DB environment variable
// 2. $XDG_DATA_HOME/mathcoach/mathcoach.db
// 3. ~/.local/share/mathcoach/mathcoach.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHCOACH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mathcoach", "mathcoach.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of a SQLite path if it doesn't
// exist. DSNs that are not plain file paths are left alone.
func EnsureDir(path string) error {
	if IsPostgresDSN(path) || IsFileURIDSN(path) {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
