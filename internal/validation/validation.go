package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Words are plain ASCII letters; the aligner's character feedback is
// defined over that alphabet.
var wordRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

// MaxWordLength bounds stored words
const MaxWordLength = 64

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateWord checks if a word may be added to the practice list
func ValidateWord(word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ValidationError{Field: "word", Message: "word is required"}
	}
	if len(word) > MaxWordLength {
		return ValidationError{Field: "word", Message: fmt.Sprintf("word must be at most %d characters", MaxWordLength)}
	}
	if !wordRegex.MatchString(word) {
		return ValidationError{Field: "word", Message: "word must contain only letters"}
	}
	return nil
}
