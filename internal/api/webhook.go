package api

import (
	"io"
	"net/http"

	"github.com/google/uuid"
)

// maxWebhookBody caps the inbound payload size. GitHub itself caps webhook
// payloads at 25 MB.
const maxWebhookBody = 25 << 20

// webhookResponse is the acknowledgement body for the webhook endpoint.
type webhookResponse struct {
	Status string `json:"status"`
}

// handleWebhook handles POST /webhook.
//
// The notification kind comes from the X-GitHub-Event header and the
// delivery id from X-GitHub-Delivery; a missing delivery id gets a
// generated one so every notification is traceable in logs. Unrecognized,
// malformed and duplicate notifications are all acknowledged with success —
// only a store failure produces an error response, leaving redelivery to
// the source platform.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	eventType := r.Header.Get("X-GitHub-Event")
	deliveryID := r.Header.Get("X-GitHub-Delivery")
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable request body", err)
		return
	}

	if _, err := s.processor.Process(r.Context(), deliveryID, eventType, body); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{Status: "success"})
}
