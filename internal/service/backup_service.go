package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"wordecho/internal/database"
)

// BackupData represents a word list export
type BackupData struct {
	Version    string       `json:"version"`
	ExportedAt time.Time    `json:"exported_at"`
	Words      []WordBackup `json:"words"`
}

// WordBackup represents a word record in an export file
type WordBackup struct {
	ID            int64     `json:"id"`
	WordText      string    `json:"word_text"`
	AudioFilename string    `json:"audio_filename"`
	CreatedAt     time.Time `json:"created_at"`
}

const backupVersion = "1.0"

// BackupService exports and imports the word list as JSON
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes the full word list to w
func (s *BackupService) Export(w io.Writer) error {
	rows, err := s.db.Query(`
		SELECT id, word_text, audio_filename, created_at
		FROM words
		ORDER BY id
	`)
	if err != nil {
		return fmt.Errorf("failed to read words: %w", err)
	}
	defer rows.Close()

	backup := BackupData{
		Version:    backupVersion,
		ExportedAt: time.Now(),
		Words:      []WordBackup{},
	}

	for rows.Next() {
		var word WordBackup
		if err := rows.Scan(&word.ID, &word.WordText, &word.AudioFilename, &word.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan word: %w", err)
		}
		backup.Words = append(backup.Words, word)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read words: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	return nil
}

// ExportToFile writes the word list to a JSON file
func (s *BackupService) ExportToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	return s.Export(file)
}

// Import reads a backup and inserts its words. When clear is true all
// existing words are removed first. Returns the number of words added.
func (s *BackupService) Import(r io.Reader, clear bool) (int, error) {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return 0, fmt.Errorf("failed to decode backup: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if clear {
		if _, err := tx.Exec("DELETE FROM words"); err != nil {
			return 0, fmt.Errorf("failed to clear words: %w", err)
		}
		log.Println("Cleared existing words")
	}

	added := 0
	for _, word := range backup.Words {
		if _, err := tx.ExecReturningID(
			"INSERT INTO words (word_text, audio_filename) VALUES (?, ?)",
			word.WordText, word.AudioFilename,
		); err != nil {
			return 0, fmt.Errorf("failed to import word %q: %w", word.WordText, err)
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return added, nil
}

// ImportFromFile reads a backup file and inserts its words
func (s *BackupService) ImportFromFile(path string, clear bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	return s.Import(file, clear)
}
