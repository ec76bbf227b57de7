package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-api/middleware"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/observability"
	"github.com/aishuu11/hackathon-2025/internal/session"
)

// ProfileHandler reads and updates session profiles.
type ProfileHandler struct {
	logger  *observability.Logger
	manager *session.Manager
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(logger *observability.Logger, manager *session.Manager) *ProfileHandler {
	return &ProfileHandler{logger: logger, manager: manager}
}

// ProfileUpdateResponseDTO is returned after a profile update.
type ProfileUpdateResponseDTO struct {
	Success   bool                 `json:"success"`
	Profile   dialogue.UserProfile `json:"profile"`
	SessionID string               `json:"sessionId"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, profile, err := h.manager.Profile(r.Context(), r.Header.Get(middleware.SessionHeader))
	if h.handleErr(w, r, err) {
		return
	}
	w.Header().Set(middleware.SessionHeader, id)
	writeJSON(h.logger, w, http.StatusOK, profile)
}

// Update handles POST /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var update dialogue.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := update.Validate(); err != nil {
		writeError(h.logger, w, http.StatusBadRequest, "invalid profile", err.Error())
		return
	}

	id, profile, err := h.manager.UpdateProfile(r.Context(), r.Header.Get(middleware.SessionHeader), update)
	if h.handleErr(w, r, err) {
		return
	}
	w.Header().Set(middleware.SessionHeader, id)
	writeJSON(h.logger, w, http.StatusOK, ProfileUpdateResponseDTO{Success: true, Profile: profile, SessionID: id})
}

func (h *ProfileHandler) handleErr(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, session.ErrInvalidSessionID):
		writeError(h.logger, w, http.StatusBadRequest, "invalid session id", "")
	default:
		h.logger.WithContext(r.Context()).Error().Err(err).Msg("Profile request failed")
		writeError(h.logger, w, http.StatusInternalServerError, "profile request failed", "")
	}
	return true
}
