package models

import "time"

// Word represents a persisted vocabulary entry
type Word struct {
	ID            int64     `json:"id"`
	WordText      string    `json:"word_text"`
	AudioFilename string    `json:"audio_filename"`
	CreatedAt     time.Time `json:"created_at"`
}
