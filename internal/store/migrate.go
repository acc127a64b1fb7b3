package store

import (
	"context"
	"fmt"
)

// migrate runs database migrations.
func (s *Store) migrate(ctx context.Context) error {
	return s.createEventsTable(ctx)
}

func (s *Store) createEventsTable(ctx context.Context) error {
	// UNIQUE(key) is the dedup guarantee: insert-if-absent is enforced by
	// the database, not by a read-then-write sequence, so concurrent
	// duplicate deliveries cannot both insert.
	const schema = `
	CREATE TABLE IF NOT EXISTS events (
		id          INTEGER PRIMARY KEY,
		key         TEXT NOT NULL,
		author      TEXT NOT NULL,
		action      TEXT NOT NULL,
		from_branch TEXT,
		to_branch   TEXT NOT NULL,
		ts          TEXT NOT NULL,
		occurred_at TEXT NOT NULL,
		received_at TEXT NOT NULL,
		UNIQUE(key)
	);

	CREATE INDEX IF NOT EXISTS idx_events_occurred_at ON events(occurred_at);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}
	return nil
}
