package session

import (
	"time"

	"github.com/google/uuid"

	"wordecho/internal/models"
	"wordecho/internal/spell"
)

// Phase describes where a practice session is in its lifecycle
type Phase string

const (
	// PhaseLoading means the word sample is being fetched
	PhaseLoading Phase = "loading"
	// PhaseNotEnoughWords means the store had no words to practice
	PhaseNotEnoughWords Phase = "not_enough_words"
	// PhaseFailed means the word store errored while sampling. Distinct
	// from NotEnoughWords: one asks the user to add words, the other to
	// retry.
	PhaseFailed Phase = "failed"
	// PhaseReady means words are sampled and the session waits for an
	// explicit start (playback must not begin on its own)
	PhaseReady Phase = "ready"
	// PhaseInProgress means the session is accepting answers
	PhaseInProgress Phase = "in_progress"
	// PhaseComplete means every word has been answered and the final
	// feedback has cleared
	PhaseComplete Phase = "complete"
)

// WordStore is the session's read-only view of the persisted word list
type WordStore interface {
	Count() (int, error)
	Sample(n int) ([]models.Word, error)
}

// Speaker reads a word aloud. Speak failures never block the session;
// the manager logs and moves on.
type Speaker interface {
	Speak(text string) error
}

// Feedback is what the player sees after submitting an answer, until the
// session moves to the next word. Detail carries the character comparison
// and is only present for incorrect answers.
type Feedback struct {
	Word      models.Word            `json:"word"`
	Submitted string                 `json:"submitted"`
	IsCorrect bool                   `json:"is_correct"`
	Detail    []spell.CharacterMatch `json:"detail,omitempty"`
}

// Snapshot is a read-only view of the live session for the API layer
type Snapshot struct {
	SessionID    string           `json:"session_id"`
	Phase        Phase            `json:"phase"`
	CurrentIndex int              `json:"current_index"`
	TotalWords   int              `json:"total_words"`
	Attempts     []models.Attempt `json:"attempts"`
	Score        int              `json:"score"`
	Feedback     *Feedback        `json:"feedback,omitempty"`
	Error        string           `json:"error,omitempty"`
}

// session is the state of one practice run. A new one is built on every
// restart; nothing survives across runs.
type session struct {
	id       uuid.UUID
	phase    Phase
	words    []models.Word
	current  int
	attempts []models.Attempt
	feedback *Feedback
	err      string

	// timer defers the advance past the current feedback; restart stops
	// it so a discarded session can never mutate its successor.
	timer *time.Timer
}

func (s *session) snapshot() Snapshot {
	snap := Snapshot{
		SessionID:    s.id.String(),
		Phase:        s.phase,
		CurrentIndex: s.current,
		TotalWords:   len(s.words),
		Attempts:     append([]models.Attempt(nil), s.attempts...),
		Score:        spell.Score(s.attempts),
		Error:        s.err,
	}
	if s.feedback != nil {
		fb := *s.feedback
		snap.Feedback = &fb
	}
	return snap
}
