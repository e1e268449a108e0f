package models

// Attempt records one answer given during a practice session: the word that
// was asked, the text the user typed (case preserved) and whether it was
// correct. Created once per word, in presentation order, never mutated.
type Attempt struct {
	Word      Word   `json:"word"`
	Submitted string `json:"submitted"`
	IsCorrect bool   `json:"is_correct"`
}
