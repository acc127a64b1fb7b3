package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hookfeed/hookfeed/internal/event"
)

// Identity key prefixes. A pull request produces two distinct lifecycle
// events (opened, then merged) that must coexist in the feed, so each gets
// its own key namespace.
const (
	prKeyPrefix    = "pr_"
	mergeKeyPrefix = "merge_"
)

// Extraction failure sentinels. Any error returned by Normalize means the
// notification is malformed for its kind and must be dropped; retrying
// would not fix it.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Normalize maps a classified payload into the canonical event record,
// deriving its dedup identity key. receivedAt is recorded on the event as
// the ingestion time.
func Normalize(kind Kind, payload []byte, receivedAt time.Time) (*event.Event, error) {
	switch kind {
	case KindPush:
		return normalizePush(payload, receivedAt)
	case KindPullRequestOpened, KindMerge:
		return normalizePullRequest(kind, payload, receivedAt)
	default:
		return nil, fmt.Errorf("no normalizer for kind %q", kind)
	}
}

func normalizePush(payload []byte, receivedAt time.Time) (*event.Event, error) {
	var p PushPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode push payload: %w", err)
	}

	if p.HeadCommit == nil || p.HeadCommit.ID == "" {
		return nil, fmt.Errorf("%w: head_commit.id", ErrMissingField)
	}
	if p.HeadCommit.Timestamp == "" {
		return nil, fmt.Errorf("%w: head_commit.timestamp", ErrMissingField)
	}
	if p.Pusher == nil || p.Pusher.Name == "" {
		return nil, fmt.Errorf("%w: pusher.name", ErrMissingField)
	}
	if p.Ref == "" {
		return nil, fmt.Errorf("%w: ref", ErrMissingField)
	}

	occurredAt, err := parseTimestamp(p.HeadCommit.Timestamp)
	if err != nil {
		return nil, err
	}

	return &event.Event{
		Key:        p.HeadCommit.ID,
		Author:     p.Pusher.Name,
		Action:     event.ActionPush,
		ToBranch:   BranchFromRef(p.Ref),
		Timestamp:  p.HeadCommit.Timestamp,
		OccurredAt: occurredAt,
		ReceivedAt: receivedAt,
	}, nil
}

func normalizePullRequest(kind Kind, payload []byte, receivedAt time.Time) (*event.Event, error) {
	var p PullRequestPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode pull_request payload: %w", err)
	}

	pr := p.PullRequest
	if pr == nil {
		return nil, fmt.Errorf("%w: pull_request", ErrMissingField)
	}
	if pr.ID == 0 {
		return nil, fmt.Errorf("%w: pull_request.id", ErrMissingField)
	}
	if pr.User == nil || pr.User.Login == "" {
		return nil, fmt.Errorf("%w: pull_request.user.login", ErrMissingField)
	}
	if pr.Head == nil || pr.Head.Ref == "" {
		return nil, fmt.Errorf("%w: pull_request.head.ref", ErrMissingField)
	}
	if pr.Base == nil || pr.Base.Ref == "" {
		return nil, fmt.Errorf("%w: pull_request.base.ref", ErrMissingField)
	}

	id := strconv.FormatInt(pr.ID, 10)

	var key, action, ts string
	if kind == KindMerge {
		key = mergeKeyPrefix + id
		action = event.ActionMerge
		// Merge time when GitHub reports one, otherwise the PR's
		// last-updated time.
		if pr.MergedAt != nil && *pr.MergedAt != "" {
			ts = *pr.MergedAt
		} else if pr.UpdatedAt != "" {
			ts = pr.UpdatedAt
		} else {
			return nil, fmt.Errorf("%w: pull_request.merged_at", ErrMissingField)
		}
	} else {
		key = prKeyPrefix + id
		action = event.ActionPullRequest
		if pr.CreatedAt == "" {
			return nil, fmt.Errorf("%w: pull_request.created_at", ErrMissingField)
		}
		ts = pr.CreatedAt
	}

	occurredAt, err := parseTimestamp(ts)
	if err != nil {
		return nil, err
	}

	return &event.Event{
		Key:        key,
		Author:     pr.User.Login,
		Action:     action,
		FromBranch: event.StringPtr(pr.Head.Ref),
		ToBranch:   pr.Base.Ref,
		Timestamp:  ts,
		OccurredAt: occurredAt,
		ReceivedAt: receivedAt,
	}, nil
}

// BranchFromRef extracts the branch name from a ref string such as
// "refs/heads/main". The segment after the last "/" is the branch; a ref
// with no separator is already a bare branch name.
func BranchFromRef(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// parseTimestamp parses a source-reported ISO-8601 timestamp and returns
// the UTC instant. Push timestamps carry a local zone offset, PR timestamps
// are UTC; RFC 3339 covers both.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return t.UTC(), nil
}
