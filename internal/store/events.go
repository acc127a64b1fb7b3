package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hookfeed/hookfeed/internal/event"
)

// InsertEvent inserts an event, suppressing duplicates on the identity key.
// Returns inserted=false when a record with the same key already exists.
// Uses ON CONFLICT(key) DO NOTHING, so check and insert are one atomic
// statement even under concurrent callers. On success, sets e.ID to the
// inserted row's ID.
func (s *Store) InsertEvent(ctx context.Context, e *event.Event) (inserted bool, err error) {
	if err := validateEvent(e); err != nil {
		return false, err
	}

	const query = `
	INSERT INTO events
	(key, author, action, from_branch, to_branch, ts, occurred_at, received_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(key) DO NOTHING
	`

	row := eventToRow(e)
	result, err := s.db.ExecContext(ctx, query,
		row.Key,
		row.Author,
		row.Action,
		row.FromBranch,
		row.ToBranch,
		row.Ts,
		row.OccurredAt,
		row.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	return true, nil
}

// ListEvents returns every stored event ordered by occurrence time
// descending (most recent first), with the row id as a stable tie-break.
// Each call is a fresh snapshot of current state.
func (s *Store) ListEvents(ctx context.Context) ([]event.Event, error) {
	const query = `
	SELECT id, key, author, action, from_branch, to_branch, ts, occurred_at, received_at
	FROM events
	ORDER BY occurred_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var items []event.Event
	for rows.Next() {
		var r eventRow
		if err := rows.Scan(
			&r.ID, &r.Key, &r.Author, &r.Action, &r.FromBranch,
			&r.ToBranch, &r.Ts, &r.OccurredAt, &r.ReceivedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		e, err := r.toEvent()
		if err != nil {
			return nil, fmt.Errorf("convert row: %w", err)
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return items, nil
}

// CountEvents returns the total number of stored events.
func (s *Store) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// GetEventByKey returns the stored event with the given identity key, or
// nil when no such event exists (for testing and diagnostics).
func (s *Store) GetEventByKey(ctx context.Context, key string) (*event.Event, error) {
	const query = `
	SELECT id, key, author, action, from_branch, to_branch, ts, occurred_at, received_at
	FROM events
	WHERE key = ?
	`

	var r eventRow
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&r.ID, &r.Key, &r.Author, &r.Action, &r.FromBranch,
		&r.ToBranch, &r.Ts, &r.OccurredAt, &r.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by key: %w", err)
	}

	return r.toEvent()
}
