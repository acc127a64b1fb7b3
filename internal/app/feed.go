package app

import (
	"context"

	"github.com/hookfeed/hookfeed/internal/event"
)

// FeedUsecase defines the feed query use case.
type FeedUsecase interface {
	List(ctx context.Context) ([]DisplayEvent, error)
}

// FeedStore defines store operations needed by FeedService.
type FeedStore interface {
	ListEvents(ctx context.Context) ([]event.Event, error)
}

// DisplayEvent is the public feed shape: a stored record minus its identity
// key, augmented with a human-readable timestamp.
type DisplayEvent struct {
	Author             string  `json:"author"`
	Action             string  `json:"action"`
	FromBranch         *string `json:"from_branch,omitempty"`
	ToBranch           string  `json:"to_branch"`
	Timestamp          string  `json:"timestamp"`
	FormattedTimestamp string  `json:"formatted_timestamp"`
}

// FeedService implements FeedUsecase.
type FeedService struct {
	Store FeedStore
}

// List reads the current snapshot of stored events, newest first, and
// derives the display timestamp for each entry.
func (s *FeedService) List(ctx context.Context) ([]DisplayEvent, error) {
	events, err := s.Store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]DisplayEvent, 0, len(events))
	for _, e := range events {
		items = append(items, DisplayEvent{
			Author:             e.Author,
			Action:             e.Action,
			FromBranch:         e.FromBranch,
			ToBranch:           e.ToBranch,
			Timestamp:          e.Timestamp,
			FormattedTimestamp: FormatTimestamp(e.Timestamp),
		})
	}
	return items, nil
}
