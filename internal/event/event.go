// Package event provides the shared Event model for hookfeed.
// This package is used by the github, ingest, store, app, and api packages.
package event

import "time"

// Action constants. One per supported repository-change kind.
const (
	ActionPush        = "PUSH"
	ActionPullRequest = "PULL_REQUEST"
	ActionMerge       = "MERGE"
)

// Event is the canonical record every inbound notification is normalized into.
// This is the domain model shared across packages, independent of storage
// implementation.
type Event struct {
	ID         int64     `json:"-"`
	Key        string    `json:"-"` // dedup identity, unique per logical event
	Author     string    `json:"author"`
	Action     string    `json:"action"`
	FromBranch *string   `json:"from_branch,omitempty"` // nil for PUSH
	ToBranch   string    `json:"to_branch"`
	Timestamp  string    `json:"timestamp"` // source-reported ISO-8601, stored verbatim
	OccurredAt time.Time `json:"-"`         // parsed Timestamp in UTC, drives feed ordering
	ReceivedAt time.Time `json:"received_at"`
}

// StringPtr returns a pointer to the given string.
// Useful for setting optional fields.
func StringPtr(s string) *string {
	return &s
}
