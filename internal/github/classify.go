package github

import "encoding/json"

// Event type tags as delivered in the X-GitHub-Event header.
const (
	EventTypePush        = "push"
	EventTypePullRequest = "pull_request"
)

// Pull request actions the classifier cares about.
const (
	actionOpened = "opened"
	actionClosed = "closed"
)

// Kind identifies which normalizer handles a notification.
type Kind int

const (
	KindUnhandled Kind = iota
	KindPush
	KindPullRequestOpened
	KindMerge
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindPullRequestOpened:
		return "pull_request_opened"
	case KindMerge:
		return "merge"
	default:
		return "unhandled"
	}
}

// Classify decides which normalizer handles a notification, based on the
// event type tag and, for pull requests, the payload's action and merged
// fields. Anything it does not recognize is KindUnhandled — an empty or
// unknown tag is not an error, the notification is simply not for us.
func Classify(eventType string, payload []byte) Kind {
	switch eventType {
	case EventTypePush:
		return KindPush
	case EventTypePullRequest:
		var p PullRequestPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return KindUnhandled
		}
		switch {
		case p.Action == actionOpened:
			return KindPullRequestOpened
		case p.Action == actionClosed && p.PullRequest != nil && p.PullRequest.Merged:
			return KindMerge
		default:
			// Other PR lifecycle actions (closed without merge, synchronize,
			// reopened, ...) are ignored.
			return KindUnhandled
		}
	default:
		return KindUnhandled
	}
}
