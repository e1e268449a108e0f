package handlers

import (
	"encoding/json"
	"net/http"

	"wordecho/internal/session"
)

// PracticeHandler exposes the practice session over the JSON API.
// Session state lives entirely in the manager; restarting or reloading
// the page discards it.
type PracticeHandler struct {
	manager *session.Manager
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(manager *session.Manager) *PracticeHandler {
	return &PracticeHandler{manager: manager}
}

// submitRequest is the body of a submit call
type submitRequest struct {
	Answer string `json:"answer"`
}

// State returns the current session snapshot
func (h *PracticeHandler) State(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.manager.Snapshot())
}

// Start begins the run and speaks the first word. Playback only starts
// on this explicit request so browsers' autoplay rules are respected.
func (h *PracticeHandler) Start(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.manager.Start())
}

// Submit records an answer for the current word
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Failed to decode submit request", err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.manager.Submit(req.Answer))
}

// Replay speaks the current word again
func (h *PracticeHandler) Replay(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.manager.Replay())
}

// Restart discards the session and samples a fresh word list
func (h *PracticeHandler) Restart(w http.ResponseWriter, r *http.Request) {
	snap := h.manager.Restart()
	if snap.Phase == session.PhaseFailed {
		respondWithJSON(w, http.StatusInternalServerError, snap)
		return
	}
	respondWithJSON(w, http.StatusOK, snap)
}
