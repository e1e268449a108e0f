package spell

import (
	"strings"

	"wordecho/internal/models"
)

// IsCorrect reports whether the submitted answer spells the target word,
// ignoring case. Whitespace is significant; callers trim before submitting
// if they want lenient input handling.
func IsCorrect(target, submitted string) bool {
	return strings.ToLower(target) == strings.ToLower(submitted)
}

// Score counts the correct attempts in a session.
func Score(attempts []models.Attempt) int {
	score := 0
	for _, attempt := range attempts {
		if attempt.IsCorrect {
			score++
		}
	}
	return score
}
