// Package ingest coordinates the notification pipeline from the webhook
// boundary to the store: classify, normalize, insert-if-absent.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hookfeed/hookfeed/internal/event"
	"github.com/hookfeed/hookfeed/internal/github"
)

// EventStore defines store operations needed by Processor.
type EventStore interface {
	InsertEvent(ctx context.Context, e *event.Event) (bool, error)
}

// Outcome is the result of processing one notification.
type Outcome int

const (
	// OutcomeIgnored: the notification was unrecognized or malformed and
	// produced no record. Not an error — the source gets a success ack so
	// it does not retry a payload that cannot become storable.
	OutcomeIgnored Outcome = iota

	// OutcomeStored: a new event record was persisted.
	OutcomeStored

	// OutcomeDuplicate: a record with the same identity key already
	// existed; nothing was written.
	OutcomeDuplicate
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "ignored"
	}
}

// Processor runs one notification through the pipeline. It holds the
// process-wide store handle as an explicit dependency so tests can
// substitute a fake.
type Processor struct {
	store  EventStore
	logger *slog.Logger
	clock  Clock
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger for the Processor.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// WithClock sets the clock for the Processor (for testing).
func WithClock(clock Clock) Option {
	return func(p *Processor) { p.clock = clock }
}

// New creates a new Processor.
func New(store EventStore, opts ...Option) *Processor {
	p := &Processor{
		store:  store,
		logger: slog.Default(),
		clock:  DefaultClock,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process classifies and normalizes one notification and inserts the
// resulting record if its identity key is not already present.
//
// Unrecognized and malformed notifications are dropped with a log line and
// a nil error: redelivery would carry the same body, so surfacing a
// transport failure buys nothing. Only a store failure is returned as an
// error; the caller answers it with a failure response and relies on the
// source's own retry to redeliver.
func (p *Processor) Process(ctx context.Context, deliveryID, eventType string, payload []byte) (Outcome, error) {
	kind := github.Classify(eventType, payload)
	if kind == github.KindUnhandled {
		p.logger.Info("notification ignored",
			"delivery_id", deliveryID,
			"event_type", eventType)
		return OutcomeIgnored, nil
	}

	e, err := github.Normalize(kind, payload, p.clock.Now())
	if err != nil {
		p.logger.Warn("notification dropped",
			"delivery_id", deliveryID,
			"kind", kind.String(),
			"error", err)
		return OutcomeIgnored, nil
	}

	inserted, err := p.store.InsertEvent(ctx, e)
	if err != nil {
		return OutcomeIgnored, fmt.Errorf("store event: %w", err)
	}
	if !inserted {
		p.logger.Debug("duplicate event suppressed",
			"delivery_id", deliveryID,
			"key", e.Key)
		return OutcomeDuplicate, nil
	}

	p.logger.Info("event stored",
		"delivery_id", deliveryID,
		"key", e.Key,
		"action", e.Action,
		"author", e.Author)
	return OutcomeStored, nil
}
