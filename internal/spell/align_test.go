package spell

import (
	"reflect"
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		submitted string
		expected  []CharacterMatch
	}{
		{
			name:      "exact match",
			target:    "apple",
			submitted: "apple",
			expected:  []CharacterMatch{MatchExact, MatchExact, MatchExact, MatchExact, MatchExact},
		},
		{
			name:      "case insensitive match",
			target:    "Apple",
			submitted: "aPPLE",
			expected:  []CharacterMatch{MatchExact, MatchExact, MatchExact, MatchExact, MatchExact},
		},
		{
			name:      "single missing character",
			target:    "apple",
			submitted: "aple",
			expected:  []CharacterMatch{MatchExact, MatchExact, MatchMissing, MatchExact, MatchExact},
		},
		{
			name:      "single extra character",
			target:    "apple",
			submitted: "appple",
			expected:  []CharacterMatch{MatchExact, MatchExact, MatchExact, MatchExtra, MatchExact, MatchExact},
		},
		{
			name:      "answer shorter than target",
			target:    "hello",
			submitted: "hel",
			expected:  []CharacterMatch{MatchExact, MatchExact, MatchExact, MatchMissing, MatchMissing},
		},
		{
			name:      "answer longer than target",
			target:    "cat",
			submitted: "catch",
			expected:  []CharacterMatch{MatchExact, MatchExact, MatchExact, MatchExtra, MatchExtra},
		},
		{
			name:      "completely wrong same length",
			target:    "abc",
			submitted: "xyz",
			expected:  []CharacterMatch{MatchWrong, MatchWrong, MatchWrong},
		},
		{
			name:      "empty submission",
			target:    "cat",
			submitted: "",
			expected:  []CharacterMatch{MatchMissing, MatchMissing, MatchMissing},
		},
		{
			name:      "empty target",
			target:    "",
			submitted: "cat",
			expected:  []CharacterMatch{MatchExtra, MatchExtra, MatchExtra},
		},
		{
			name:      "both empty",
			target:    "",
			submitted: "",
			expected:  []CharacterMatch{},
		},
		{
			name:      "single substitution",
			target:    "spelling",
			submitted: "spolling",
			expected: []CharacterMatch{
				MatchExact, MatchExact, MatchWrong, MatchExact,
				MatchExact, MatchExact, MatchExact, MatchExact,
			},
		},
		{
			name:      "missing letter at start",
			target:    "train",
			submitted: "rain",
			expected:  []CharacterMatch{MatchMissing, MatchExact, MatchExact, MatchExact, MatchExact},
		},
		{
			name:      "extra letter at start",
			target:    "rain",
			submitted: "train",
			expected:  []CharacterMatch{MatchExtra, MatchExact, MatchExact, MatchExact, MatchExact},
		},
		{
			// A skip would realign "at" but the remainders are equal, so
			// nothing may be skipped and every position reads as wrong.
			name:      "shifted letters same length",
			target:    "cat",
			submitted: "ato",
			expected:  []CharacterMatch{MatchWrong, MatchWrong, MatchWrong},
		},
		{
			// One character of lookahead cannot see a swap, so a
			// transposition reads as two substitutions.
			name:      "adjacent transposition",
			target:    "friend",
			submitted: "freind",
			expected: []CharacterMatch{
				MatchExact, MatchExact, MatchWrong, MatchWrong,
				MatchExact, MatchExact,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Align(tt.target, tt.submitted)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Align(%q, %q) = %v, want %v", tt.target, tt.submitted, result, tt.expected)
			}
		})
	}
}

func TestAlignLengthInvariant(t *testing.T) {
	pairs := []struct {
		target    string
		submitted string
	}{
		{"", ""},
		{"a", ""},
		{"", "a"},
		{"necessary", "neccessary"},
		{"definitely", "definately"},
		{"rhythm", "rythm"},
		{"cat", "dog"},
		{"short", "averylongsubmission"},
		{"averylongtargetword", "no"},
		// Shifted-overlap pairs, where an ungated lookahead would skip a
		// character without shrinking the length gap
		{"cat", "ato"},
		{"ab", "bc"},
		{"axb", "xby"},
		{"abc", "ca"},
	}

	for _, p := range pairs {
		result := Align(p.target, p.submitted)
		want := len([]rune(p.target))
		if l := len([]rune(p.submitted)); l > want {
			want = l
		}
		if len(result) != want {
			t.Errorf("len(Align(%q, %q)) = %d, want %d", p.target, p.submitted, len(result), want)
		}
	}
}

func TestAlignIdentity(t *testing.T) {
	words := []string{"a", "cat", "Necessary", "RHYTHM", "MiXeDcAsE"}

	for _, w := range words {
		for _, match := range Align(w, w) {
			if match != MatchExact {
				t.Errorf("Align(%q, %q) contains %v, want all %v", w, w, match, MatchExact)
			}
		}
	}
}

func TestAlignCaseInsensitive(t *testing.T) {
	tests := []struct {
		target    string
		submitted string
	}{
		{"apple", "aple"},
		{"friend", "freind"},
		{"cat", "catch"},
	}

	for _, tt := range tests {
		base := Align(tt.target, tt.submitted)
		lower := Align(strings.ToLower(tt.target), strings.ToLower(tt.submitted))
		upper := Align(strings.ToUpper(tt.target), strings.ToUpper(tt.submitted))
		if !reflect.DeepEqual(base, lower) {
			t.Errorf("Align(%q, %q) differs from lowercased inputs: %v vs %v", tt.target, tt.submitted, base, lower)
		}
		if !reflect.DeepEqual(base, upper) {
			t.Errorf("Align(%q, %q) differs from uppercased inputs: %v vs %v", tt.target, tt.submitted, base, upper)
		}
	}
}

func TestAlignAgreesWithIsCorrect(t *testing.T) {
	pairs := []struct {
		target    string
		submitted string
	}{
		{"apple", "apple"},
		{"apple", "APPLE"},
		{"apple", "aple"},
		{"apple", "appple"},
		{"cat", ""},
		{"", ""},
		{"friend", "freind"},
	}

	for _, p := range pairs {
		allMatch := true
		for _, m := range Align(p.target, p.submitted) {
			if m != MatchExact {
				allMatch = false
				break
			}
		}
		if got := IsCorrect(p.target, p.submitted); got != allMatch {
			t.Errorf("IsCorrect(%q, %q) = %v but alignment all-match = %v", p.target, p.submitted, got, allMatch)
		}
	}
}
