// Package handlers provides HTTP handlers for the nutribot API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aishuu11/hackathon-2025/internal/observability"
)

// ErrorDTO is the body of every error response.
type ErrorDTO struct {
	Error    string `json:"error"`
	Detail   string `json:"detail,omitempty"`
	Type     string `json:"type,omitempty"`
	Response string `json:"response,omitempty"`
}

// apologyText is shown to chat clients when a turn fails inside the service.
const apologyText = "Sorry, something went wrong processing your message."

func writeJSON(logger *observability.Logger, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(logger *observability.Logger, w http.ResponseWriter, status int, message, detail string) {
	writeJSON(logger, w, status, ErrorDTO{Error: message, Detail: detail})
}
