// Package github classifies GitHub webhook notifications and normalizes
// their payloads into the canonical event model. All functions are pure;
// validation happens here, at the boundary, so the rest of the pipeline
// never touches untyped payload data.
package github

// PushPayload is the subset of a push notification body that the
// normalizer reads. Nested objects are pointers so absence is detectable.
type PushPayload struct {
	Ref        string      `json:"ref"`
	Pusher     *Pusher     `json:"pusher"`
	HeadCommit *HeadCommit `json:"head_commit"`
}

// Pusher identifies the actor behind a push.
type Pusher struct {
	Name string `json:"name"`
}

// HeadCommit carries the head commit of a push. Its ID doubles as the
// dedup identity for the whole push event.
type HeadCommit struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

// PullRequestPayload is the subset of a pull_request notification body
// that the classifier and normalizers read.
type PullRequestPayload struct {
	Action      string       `json:"action"`
	PullRequest *PullRequest `json:"pull_request"`
}

// PullRequest carries the pull request details shared by the opened and
// merged lifecycle events.
type PullRequest struct {
	ID        int64   `json:"id"`
	User      *User   `json:"user"`
	Head      *Branch `json:"head"`
	Base      *Branch `json:"base"`
	CreatedAt string  `json:"created_at"`
	MergedAt  *string `json:"merged_at"` // null until the PR is merged
	UpdatedAt string  `json:"updated_at"`
	Merged    bool    `json:"merged"`
}

// User identifies the pull request author.
type User struct {
	Login string `json:"login"`
}

// Branch names one side of a pull request.
type Branch struct {
	Ref string `json:"ref"`
}
