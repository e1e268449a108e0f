package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wordecho/internal/database"
	"wordecho/internal/models"
)

// WordRepository handles database operations for practice words
type WordRepository struct {
	db database.DBTX
}

// NewWordRepository creates a new word repository
func NewWordRepository(db database.DBTX) *WordRepository {
	return &WordRepository{db: db}
}

// Create inserts a new word and returns it with its assigned ID
func (r *WordRepository) Create(wordText, audioFilename string) (*models.Word, error) {
	query := "INSERT INTO words (word_text, audio_filename) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, wordText, audioFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to create word: %w", err)
	}

	return &models.Word{
		ID:            id,
		WordText:      wordText,
		AudioFilename: audioFilename,
		CreatedAt:     time.Now(),
	}, nil
}

// GetByID retrieves a word by ID, or nil if it does not exist
func (r *WordRepository) GetByID(id int64) (*models.Word, error) {
	query := `
		SELECT id, word_text, audio_filename, created_at
		FROM words
		WHERE id = ?
	`
	word := &models.Word{}
	err := r.db.QueryRow(query, id).Scan(
		&word.ID,
		&word.WordText,
		&word.AudioFilename,
		&word.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	return word, nil
}

// List retrieves all words, newest first
func (r *WordRepository) List() ([]models.Word, error) {
	query := `
		SELECT id, word_text, audio_filename, created_at
		FROM words
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// Count returns the number of stored words
func (r *WordRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// Sample retrieves up to n words drawn uniformly at random without
// replacement. Fewer are returned when the store holds fewer.
func (r *WordRepository) Sample(n int) ([]models.Word, error) {
	query := fmt.Sprintf(`
		SELECT id, word_text, audio_filename, created_at
		FROM words
		ORDER BY %s
		LIMIT ?
	`, r.db.GetDialect().RandomFunc())
	rows, err := r.db.Query(query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to sample words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// Delete removes a word
func (r *WordRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM words WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

func scanWords(rows *sql.Rows) ([]models.Word, error) {
	var words []models.Word
	for rows.Next() {
		var word models.Word
		if err := rows.Scan(
			&word.ID,
			&word.WordText,
			&word.AudioFilename,
			&word.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}
