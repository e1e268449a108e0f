package service

import (
	"errors"
	"log"
	"strings"

	"wordecho/internal/models"
	"wordecho/internal/repository"
	"wordecho/internal/validation"
)

// ErrWordNotFound is returned when a word ID does not exist
var ErrWordNotFound = errors.New("word not found")

// AudioGenerator produces and removes cached audio clips for words
type AudioGenerator interface {
	GenerateAudioFile(text string) (string, error)
	BatchGenerateAudio(words []string) (map[string]string, error)
	DeleteAudioFile(filename string) error
}

// WordService handles word list management. It also implements the
// practice session's word store (Count/Sample).
type WordService struct {
	wordRepo *repository.WordRepository
	tts      AudioGenerator
}

// NewWordService creates a new word service
func NewWordService(wordRepo *repository.WordRepository, tts AudioGenerator) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		tts:      tts,
	}
}

// AddWord validates and stores a new word. Audio generation is best
// effort: a word without a cached clip is still practicable, the clip is
// fetched again at speak time.
func (s *WordService) AddWord(text string) (*models.Word, error) {
	text = strings.TrimSpace(text)
	if err := validation.ValidateWord(text); err != nil {
		return nil, err
	}

	audioFilename, err := s.tts.GenerateAudioFile(text)
	if err != nil {
		log.Printf("Failed to generate audio for %q: %v", text, err)
		audioFilename = ""
	}

	return s.wordRepo.Create(text, audioFilename)
}

// DeleteWord removes a word and its cached audio. Duplicate words share
// a clip; a deleted clip is regenerated on the next speak, so removing
// it here is safe.
func (s *WordService) DeleteWord(id int64) error {
	word, err := s.wordRepo.GetByID(id)
	if err != nil {
		return err
	}
	if word == nil {
		return ErrWordNotFound
	}

	if err := s.wordRepo.Delete(id); err != nil {
		return err
	}

	if word.AudioFilename != "" {
		if err := s.tts.DeleteAudioFile(word.AudioFilename); err != nil {
			log.Printf("Failed to delete audio for %q: %v", word.WordText, err)
		}
	}

	return nil
}

// ListWords returns all stored words
func (s *WordService) ListWords() ([]models.Word, error) {
	return s.wordRepo.List()
}

// Count returns the number of stored words
func (s *WordService) Count() (int, error) {
	return s.wordRepo.Count()
}

// Sample returns up to n randomly chosen words
func (s *WordService) Sample(n int) ([]models.Word, error) {
	return s.wordRepo.Sample(n)
}

// WarmAudioCache pre-generates audio for every stored word so the first
// practice run doesn't stall on downloads. Best effort.
func (s *WordService) WarmAudioCache() error {
	words, err := s.wordRepo.List()
	if err != nil {
		return err
	}

	texts := make([]string, len(words))
	for i, word := range words {
		texts[i] = word.WordText
	}

	_, err = s.tts.BatchGenerateAudio(texts)
	return err
}
