package validation

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		wantErr bool
	}{
		{
			name:    "simple word",
			word:    "apple",
			wantErr: false,
		},
		{
			name:    "mixed case",
			word:    "Apple",
			wantErr: false,
		},
		{
			name:    "single letter",
			word:    "a",
			wantErr: false,
		},
		{
			name:    "surrounding whitespace is tolerated",
			word:    "  apple  ",
			wantErr: false,
		},
		{
			name:    "empty",
			word:    "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			word:    "   ",
			wantErr: true,
		},
		{
			name:    "digits",
			word:    "apple1",
			wantErr: true,
		},
		{
			name:    "inner space",
			word:    "ice cream",
			wantErr: true,
		},
		{
			name:    "punctuation",
			word:    "don't",
			wantErr: true,
		},
		{
			name:    "non-ascii letters",
			word:    "café",
			wantErr: true,
		},
		{
			name:    "too long",
			word:    strings.Repeat("a", MaxWordLength+1),
			wantErr: true,
		},
		{
			name:    "at max length",
			word:    strings.Repeat("a", MaxWordLength),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.word)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.word, err, tt.wantErr)
			}
		})
	}
}
