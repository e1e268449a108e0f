package session

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordecho/internal/models"
	"wordecho/internal/spell"
)

// DefaultSize is how many words a session asks the store for
const DefaultSize = 10

// Default feedback display times. Incorrect answers stay up longer so the
// character comparison can be read.
const (
	DefaultCorrectDelay   = 1200 * time.Millisecond
	DefaultIncorrectDelay = 3 * time.Second
)

// Config tunes a session manager
type Config struct {
	Size           int
	CorrectDelay   time.Duration
	IncorrectDelay time.Duration
}

// Manager owns the single live practice session and is its only mutator.
// All transitions run under one lock, so submissions, timer callbacks and
// restarts are applied one at a time.
type Manager struct {
	mu      sync.Mutex
	store   WordStore
	speaker Speaker
	cfg     Config
	cur     *session
}

// NewManager creates a session manager. No session exists until the first
// Restart.
func NewManager(store WordStore, speaker Speaker, cfg Config) *Manager {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.CorrectDelay <= 0 {
		cfg.CorrectDelay = DefaultCorrectDelay
	}
	if cfg.IncorrectDelay <= 0 {
		cfg.IncorrectDelay = DefaultIncorrectDelay
	}
	return &Manager{
		store:   store,
		speaker: speaker,
		cfg:     cfg,
	}
}

// Restart discards the current session, including any pending feedback
// timer, and samples a fresh word list. The returned snapshot is Ready,
// NotEnoughWords or Failed.
func (m *Manager) Restart() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cur != nil && m.cur.timer != nil {
		m.cur.timer.Stop()
		m.cur.timer = nil
	}
	m.cur = m.load()
	return m.cur.snapshot()
}

// load builds a new session from the word store
func (m *Manager) load() *session {
	s := &session{
		id:    uuid.New(),
		phase: PhaseLoading,
	}

	count, err := m.store.Count()
	if err != nil {
		log.Printf("Failed to count words: %v", err)
		s.phase = PhaseFailed
		s.err = "word store unavailable"
		return s
	}
	if count == 0 {
		s.phase = PhaseNotEnoughWords
		return s
	}

	words, err := m.store.Sample(m.cfg.Size)
	if err != nil {
		log.Printf("Failed to sample words: %v", err)
		s.phase = PhaseFailed
		s.err = "word store unavailable"
		return s
	}
	if len(words) == 0 {
		// Emptied between the count and the sample
		s.phase = PhaseNotEnoughWords
		return s
	}

	s.words = words
	s.phase = PhaseReady
	return s
}

// Start begins the run: the session moves to InProgress and the first
// word is spoken. Start is an explicit action so audio never plays
// without a user gesture. A no-op unless the session is Ready.
func (m *Manager) Start() Snapshot {
	m.mu.Lock()
	if m.cur == nil {
		m.mu.Unlock()
		return missingSnapshot()
	}
	var word string
	if m.cur.phase == PhaseReady {
		m.cur.phase = PhaseInProgress
		word = m.cur.words[0].WordText
	}
	snap := m.cur.snapshot()
	m.mu.Unlock()

	if word != "" {
		m.speak(word)
	}
	return snap
}

// Submit records an answer for the current word. Empty or whitespace-only
// text is ignored, as is any submission made while feedback from the
// previous answer is still showing. Each accepted submission appends
// exactly one attempt; the session advances after the feedback delay.
func (m *Manager) Submit(text string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cur == nil {
		return missingSnapshot()
	}
	s := m.cur
	if s.phase != PhaseInProgress || s.feedback != nil {
		return s.snapshot()
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s.snapshot()
	}
	if s.current >= len(s.words) {
		// Should be unreachable; never corrupt attempt ordering.
		return s.snapshot()
	}

	word := s.words[s.current]
	correct := spell.IsCorrect(word.WordText, trimmed)

	s.attempts = append(s.attempts, models.Attempt{
		Word:      word,
		Submitted: trimmed,
		IsCorrect: correct,
	})

	feedback := &Feedback{
		Word:      word,
		Submitted: trimmed,
		IsCorrect: correct,
	}
	delay := m.cfg.CorrectDelay
	if !correct {
		// The character comparison is only needed when something was
		// wrong; a correct answer just gets an acknowledgment.
		feedback.Detail = spell.Align(word.WordText, trimmed)
		delay = m.cfg.IncorrectDelay
	}
	s.feedback = feedback

	s.timer = time.AfterFunc(delay, func() {
		m.advance(s)
	})

	return s.snapshot()
}

// advance clears the feedback for the given session and either moves to
// the next word or completes the run. Runs from the feedback timer; if
// the session has been replaced by a restart in the meantime, this is a
// no-op.
func (m *Manager) advance(s *session) {
	m.mu.Lock()
	if m.cur != s {
		m.mu.Unlock()
		return
	}

	s.timer = nil
	s.feedback = nil

	var word string
	if len(s.attempts) >= len(s.words) {
		s.phase = PhaseComplete
	} else {
		s.current++
		word = s.words[s.current].WordText
	}
	m.mu.Unlock()

	if word != "" {
		m.speak(word)
	}
}

// Replay speaks the current word again without touching session state
func (m *Manager) Replay() Snapshot {
	m.mu.Lock()
	if m.cur == nil {
		m.mu.Unlock()
		return missingSnapshot()
	}
	s := m.cur
	var word string
	if s.phase == PhaseInProgress && s.current < len(s.words) {
		word = s.words[s.current].WordText
	}
	snap := s.snapshot()
	m.mu.Unlock()

	if word != "" {
		m.speak(word)
	}
	return snap
}

// Snapshot returns the current session state
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cur == nil {
		return missingSnapshot()
	}
	return m.cur.snapshot()
}

// speak plays a word, best effort. Playback can stall in a network
// fetch, so callers must invoke it after releasing the session lock;
// slow or failing audio never holds up submissions or snapshots.
func (m *Manager) speak(text string) {
	if err := m.speaker.Speak(text); err != nil {
		log.Printf("Failed to speak %q: %v", text, err)
	}
}

// missingSnapshot is returned before the first Restart has run
func missingSnapshot() Snapshot {
	return Snapshot{Phase: PhaseLoading, Attempts: []models.Attempt{}}
}
