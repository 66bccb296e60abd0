package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/socralabs/socra/ent"

	// Pure Go SQLite driver, no CGO.
	_ "modernc.org/sqlite"
)

// Store owns the SQLite handle, the ent client on top of it, and the
// sequence counter every event append draws from.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies session
// pragmas, migrates the schema, and readies the event sequence.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	st, err := bootstrap(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// bootstrap brings a raw connection up to a usable Store. On error the
// caller closes db, which tears down the ent client's driver with it.
func bootstrap(db *sql.DB) (*Store, error) {
	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

// Client exposes the ent client for direct queries.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB exposes the raw handle for queries ent cannot express.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the connection. The ent client owns the driver, so
// closing it closes the handle too.
func (s *Store) Close() error {
	return s.client.Close()
}

// EventRepo returns the event log backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// SnapshotRepo returns the snapshot store backed by this store.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client}
}

// applyPragmas tunes SQLite for a single interactive user. WAL keeps
// reads from blocking the appends a live session makes.
func applyPragmas(db *sql.DB) error {
	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("exec %q: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath picks the database location: SOCRA_DB when set,
// otherwise socra/socra.db under the user's data directory.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SOCRA_DB"); p != "" {
		return p, EnsureDir(p)
	}
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "socra", "socra.db")
	return p, EnsureDir(p)
}

// dataDir resolves XDG_DATA_HOME, defaulting to ~/.local/share.
func dataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// EnsureDir makes the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
