package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out the monotonic sequence shared by every
// event table. Events of different kinds live in separate ent tables,
// and per-table auto-increment says nothing about how rows of one kind
// interleave with rows of another. The shared counter is what makes
// the whole log a single append-only stream: replay sorts on it, and a
// snapshot names one value as its cut-off.
//
// ent has no notion of a database-level counter, so this is raw SQL.
// RETURNING makes the increment atomic in the database; the mutex
// keeps in-process callers from interleaving on the same connection.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter ensures the counter row exists, seeded at zero.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS event_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last INTEGER NOT NULL DEFAULT 0
		)`,
		`INSERT OR IGNORE INTO event_sequence (id, last) VALUES (1, 0)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init event sequence: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next increments the counter and returns the new value. The first
// call returns 1.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE event_sequence SET last = last + 1 WHERE id = 1 RETURNING last`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// Current reports the last value handed out, zero before any Next.
func (sc *sequenceCounter) Current(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`SELECT last FROM event_sequence WHERE id = 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("current sequence: %w", err)
	}
	return seq, nil
}
