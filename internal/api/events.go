package api

import (
	"net/http"

	"github.com/hookfeed/hookfeed/internal/app"
)

// handleEvents handles GET /events. The response is a single JSON array of
// display events, newest first, for the polling feed client.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	items, err := s.feed.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", err)
		return
	}

	// Ensure an empty array, not null, for JSON serialization
	if items == nil {
		items = []app.DisplayEvent{}
	}

	writeJSON(w, http.StatusOK, items)
}
