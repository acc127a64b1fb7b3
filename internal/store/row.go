package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hookfeed/hookfeed/internal/event"
)

// eventRow is the internal type representing a database row.
type eventRow struct {
	ID         int64
	Key        string
	Author     string
	Action     string
	FromBranch sql.NullString
	ToBranch   string
	Ts         string
	OccurredAt string
	ReceivedAt string
}

// toEvent converts a database row to an Event.
func (r *eventRow) toEvent() (*event.Event, error) {
	occurredAt, err := time.Parse(TimeFormat, r.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("parse occurred_at %q: %w", r.OccurredAt, err)
	}

	receivedAt, err := time.Parse(TimeFormat, r.ReceivedAt)
	if err != nil {
		return nil, fmt.Errorf("parse received_at %q: %w", r.ReceivedAt, err)
	}

	e := &event.Event{
		ID:         r.ID,
		Key:        r.Key,
		Author:     r.Author,
		Action:     r.Action,
		ToBranch:   r.ToBranch,
		Timestamp:  r.Ts,
		OccurredAt: occurredAt,
		ReceivedAt: receivedAt,
	}

	if r.FromBranch.Valid {
		e.FromBranch = &r.FromBranch.String
	}

	return e, nil
}

// eventToRow converts an Event to a database row.
func eventToRow(e *event.Event) *eventRow {
	r := &eventRow{
		ID:         e.ID,
		Key:        e.Key,
		Author:     e.Author,
		Action:     e.Action,
		ToBranch:   e.ToBranch,
		Ts:         e.Timestamp,
		OccurredAt: e.OccurredAt.UTC().Format(TimeFormat),
		ReceivedAt: e.ReceivedAt.UTC().Format(TimeFormat),
	}

	if e.FromBranch != nil {
		r.FromBranch = sql.NullString{String: *e.FromBranch, Valid: true}
	}

	return r
}

// validateEvent checks that required fields are set.
func validateEvent(e *event.Event) error {
	if e.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidEvent)
	}
	if e.Author == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidEvent)
	}
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrInvalidEvent)
	}
	if e.ToBranch == "" {
		return fmt.Errorf("%w: to_branch is required", ErrInvalidEvent)
	}
	if e.Timestamp == "" {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidEvent)
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", ErrInvalidEvent)
	}
	if e.ReceivedAt.IsZero() {
		return fmt.Errorf("%w: received_at is required", ErrInvalidEvent)
	}
	return nil
}
