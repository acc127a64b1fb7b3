package github

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   string
		want      Kind
	}{
		{
			name:      "push",
			eventType: "push",
			payload:   `{}`,
			want:      KindPush,
		},
		{
			name:      "pull request opened",
			eventType: "pull_request",
			payload:   `{"action":"opened","pull_request":{"id":1}}`,
			want:      KindPullRequestOpened,
		},
		{
			name:      "pull request closed and merged",
			eventType: "pull_request",
			payload:   `{"action":"closed","pull_request":{"id":1,"merged":true}}`,
			want:      KindMerge,
		},
		{
			name:      "pull request closed without merge",
			eventType: "pull_request",
			payload:   `{"action":"closed","pull_request":{"id":1,"merged":false}}`,
			want:      KindUnhandled,
		},
		{
			name:      "pull request synchronize",
			eventType: "pull_request",
			payload:   `{"action":"synchronize","pull_request":{"id":1}}`,
			want:      KindUnhandled,
		},
		{
			name:      "pull request without pull_request object",
			eventType: "pull_request",
			payload:   `{"action":"closed"}`,
			want:      KindUnhandled,
		},
		{
			name:      "pull request with invalid JSON",
			eventType: "pull_request",
			payload:   `{not json`,
			want:      KindUnhandled,
		},
		{
			name:      "unknown event type",
			eventType: "issues",
			payload:   `{}`,
			want:      KindUnhandled,
		},
		{
			name:      "missing event type",
			eventType: "",
			payload:   `{}`,
			want:      KindUnhandled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.eventType, []byte(tt.payload))
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
