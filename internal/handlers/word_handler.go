package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wordecho/internal/models"
	"wordecho/internal/service"
	"wordecho/internal/validation"
)

// WordHandler handles word list management requests
type WordHandler struct {
	wordService *service.WordService
}

// NewWordHandler creates a new word handler
func NewWordHandler(wordService *service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// addWordRequest is the body of a create call
type addWordRequest struct {
	Word string `json:"word"`
}

// List returns all stored words
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.wordService.ListWords()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load words", "Error listing words", err)
		return
	}
	if words == nil {
		words = []models.Word{}
	}
	respondWithJSON(w, http.StatusOK, words)
}

// Count returns how many words are stored
func (h *WordHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.wordService.Count()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to count words", "Error counting words", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int{"count": count})
}

// Create adds a word to the practice list
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Failed to decode add word request", err)
		return
	}

	word, err := h.wordService.AddWord(req.Word)
	if err != nil {
		var validationErr validation.ValidationError
		if errors.As(err, &validationErr) {
			respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to add word", "Error adding word", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, word)
}

// Delete removes a word from the practice list
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word ID", "", nil)
		return
	}

	if err := h.wordService.DeleteWord(id); err != nil {
		if errors.Is(err, service.ErrWordNotFound) {
			respondWithError(w, http.StatusNotFound, "Word not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete word", "Error deleting word", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
