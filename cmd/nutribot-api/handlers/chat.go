package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-api/middleware"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/observability"
	"github.com/aishuu11/hackathon-2025/internal/session"
)

// ChatHandler handles chat turns.
type ChatHandler struct {
	logger  *observability.Logger
	manager *session.Manager
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, manager *session.Manager) *ChatHandler {
	return &ChatHandler{logger: logger, manager: manager}
}

// ChatRequestDTO represents the API request for a chat turn.
type ChatRequestDTO struct {
	Message string `json:"message"`
}

// ChatResponseDTO is the reply envelope plus the session it belongs to.
type ChatResponseDTO struct {
	dialogue.Envelope
	SessionID string `json:"sessionId"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(h.logger, w, http.StatusBadRequest, "No message provided", "")
		return
	}

	res, err := h.manager.Chat(ctx, r.Header.Get(middleware.SessionHeader), req.Message)
	if errors.Is(err, session.ErrInvalidSessionID) {
		writeError(h.logger, w, http.StatusBadRequest, "invalid session id", "")
		return
	}
	if err != nil {
		h.logger.WithContext(ctx).Error().Err(err).Msg("Chat turn failed")
		writeJSON(h.logger, w, http.StatusInternalServerError, ErrorDTO{
			Error:    "chat failed",
			Type:     "error",
			Response: apologyText,
		})
		return
	}

	w.Header().Set(middleware.SessionHeader, res.SessionID)
	writeJSON(h.logger, w, http.StatusOK, ChatResponseDTO{Envelope: res.Turn.Envelope, SessionID: res.SessionID})
}

// Reset handles DELETE /api/session.
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	err := h.manager.Reset(r.Context(), r.Header.Get(middleware.SessionHeader))
	if errors.Is(err, session.ErrInvalidSessionID) {
		writeError(h.logger, w, http.StatusBadRequest, "invalid session id", "")
		return
	}
	if err != nil {
		h.logger.WithContext(r.Context()).Error().Err(err).Msg("Session reset failed")
		writeError(h.logger, w, http.StatusInternalServerError, "reset failed", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
