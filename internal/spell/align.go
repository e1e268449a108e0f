package spell

import "unicode"

// CharacterMatch classifies a single aligned character position when a
// submitted answer is compared against the target word.
type CharacterMatch string

const (
	// MatchExact means the characters at this position agree.
	MatchExact CharacterMatch = "match"
	// MatchWrong means a different character was typed at this position.
	MatchWrong CharacterMatch = "wrong"
	// MatchMissing means a target character has no counterpart in the answer.
	MatchMissing CharacterMatch = "missing"
	// MatchExtra means the answer contains a character the target does not.
	MatchExtra CharacterMatch = "extra"
)

// Align compares a submitted answer against the target word and classifies
// every character position. Comparison is case-insensitive. The result always
// has exactly max(len(target), len(submitted)) entries, counted in runes.
//
// The algorithm is a greedy scan with a one-character lookahead: on a
// mismatch it checks whether skipping a character on the longer remaining
// side realigns the strings (a missing letter when the target remainder is
// longer, an extra letter when the submitted remainder is), and otherwise
// marks the position wrong. A skip is only allowed on the longer side, so
// every skip closes the length gap and the result length holds for all
// inputs. Adjacent transpositions ("freind" for "friend") leave the
// remainders equal and therefore show up as two wrong positions rather
// than a swap; single insertions and deletions, which are far more common
// in practice, are pinpointed exactly.
func Align(target, submitted string) []CharacterMatch {
	t := lowerRunes(target)
	s := lowerRunes(submitted)

	result := make([]CharacterMatch, 0, max(len(t), len(s)))

	i, j := 0, 0
	for i < len(t) {
		if j >= len(s) {
			// Answer ran out; the rest of the target is missing.
			result = append(result, MatchMissing)
			i++
			continue
		}
		if t[i] == s[j] {
			result = append(result, MatchExact)
			i++
			j++
			continue
		}

		// Mismatch. Peek one character ahead on the side with more left;
		// if that realigns the strings, a letter was left out or added
		// here. Equal remainders never skip, so a transposition reads as
		// two wrong positions.
		remT, remS := len(t)-i, len(s)-j
		switch {
		case remT > remS && t[i+1] == s[j]:
			result = append(result, MatchMissing)
			i++
		case remS > remT && s[j+1] == t[i]:
			result = append(result, MatchExtra)
			j++
		default:
			result = append(result, MatchWrong)
			i++
			j++
		}
	}

	// Anything typed beyond the end of the target is extra.
	for ; j < len(s); j++ {
		result = append(result, MatchExtra)
	}

	return result
}

// lowerRunes lowercases rune by rune so the rune count never changes,
// keeping alignment indices stable regardless of input.
func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
