package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hookfeed/hookfeed/internal/event"
)

type fakeFeedStore struct {
	events []event.Event
	err    error
}

func (f *fakeFeedStore) ListEvents(ctx context.Context) ([]event.Event, error) {
	return f.events, f.err
}

func TestFeedService_List(t *testing.T) {
	now := time.Date(2021, 4, 1, 21, 30, 0, 0, time.UTC)
	store := &fakeFeedStore{
		events: []event.Event{
			{
				Key:        "merge_42",
				Author:     "bob",
				Action:     event.ActionMerge,
				FromBranch: event.StringPtr("feature"),
				ToBranch:   "main",
				Timestamp:  "2021-04-01T21:30:00Z",
				OccurredAt: now,
				ReceivedAt: now,
			},
			{
				Key:        "abc123",
				Author:     "alice",
				Action:     event.ActionPush,
				ToBranch:   "main",
				Timestamp:  "2021-03-01T08:00:00Z",
				OccurredAt: now.AddDate(0, -1, 0),
				ReceivedAt: now,
			},
		},
	}

	svc := &FeedService{Store: store}
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	// Store order is preserved (the store already sorts newest first)
	if items[0].Author != "bob" || items[1].Author != "alice" {
		t.Errorf("unexpected order: %q then %q", items[0].Author, items[1].Author)
	}

	if items[0].FormattedTimestamp != "01st April 2021 - 09:30 PM UTC" {
		t.Errorf("FormattedTimestamp = %q", items[0].FormattedTimestamp)
	}
	if items[0].FromBranch == nil || *items[0].FromBranch != "feature" {
		t.Errorf("FromBranch = %v, want feature", items[0].FromBranch)
	}
	if items[1].FromBranch != nil {
		t.Errorf("FromBranch = %v, want nil for push", *items[1].FromBranch)
	}
}

func TestFeedService_List_BadTimestampDegradesEntryOnly(t *testing.T) {
	store := &fakeFeedStore{
		events: []event.Event{
			{Author: "alice", Action: event.ActionPush, ToBranch: "main", Timestamp: "garbage"},
			{Author: "bob", Action: event.ActionPush, ToBranch: "main", Timestamp: "2021-04-01T21:30:00Z"},
		},
	}

	svc := &FeedService{Store: store}
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if items[0].FormattedTimestamp != "garbage" {
		t.Errorf("bad entry FormattedTimestamp = %q, want raw fallback", items[0].FormattedTimestamp)
	}
	if items[1].FormattedTimestamp != "01st April 2021 - 09:30 PM UTC" {
		t.Errorf("good entry FormattedTimestamp = %q", items[1].FormattedTimestamp)
	}
}

func TestFeedService_List_StoreError(t *testing.T) {
	wantErr := errors.New("store unavailable")
	svc := &FeedService{Store: &fakeFeedStore{err: wantErr}}

	_, err := svc.List(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
