package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/services"
)

const maxContactBody = 64 << 10

// ContactHandler accepts contact-form submissions
type ContactHandler struct {
	contactService *services.ContactService
	log            *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, log: log}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form services.ContactForm

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.contactService.Submit(r.Context(), form)
	if err != nil {
		// the client went away while the submission was in flight
		if errors.Is(err, r.Context().Err()) {
			h.log.Debug("contact submission abandoned",
				zap.String("request_id", middleware.GetRequestID(r.Context())))
			return
		}
		respondError(w, r, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if !result.OK() {
		respondJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
