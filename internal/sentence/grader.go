// Package sentence grades word-by-word sentence reconstructions and prepares
// scrambled word banks for the construction exercise.
package sentence

import (
	"strings"
	"unicode/utf8"

	"github.com/rvanbeek/flitskaart/internal/match"
)

// TypoDetail records a word that was accepted despite not matching exactly.
type TypoDetail struct {
	Index    int    `json:"index"`
	Expected string `json:"expected"`
	Received string `json:"received"`
}

// Evaluation is the result of grading a constructed sentence.
type Evaluation struct {
	IsCorrect       bool
	MatchedViaFuzzy bool
	TypoDetails     []TypoDetail
}

// Dutch pronoun pairs that are interchangeable in everyday speech.
var pronounVariants = map[string]string{
	"we":  "wij",
	"wij": "wij",
	"ze":  "zij",
	"zij": "zij",
}

// Similarity thresholds for accepting mismatched short words. Tuned against
// real answer data; changing them shifts grading behavior.
const (
	shortWordThreshold  = 0.6  // normalized length <= 3
	fourLetterThreshold = 0.67 // normalized length == 4
)

// Evaluate compares a constructed sentence against the reference word by
// word. A word-count mismatch is a structural failure rather than a typo. A
// mismatched word longer than four characters fails the whole sentence.
func Evaluate(constructed, reference []string) Evaluation {
	if len(constructed) != len(reference) {
		return Evaluation{}
	}

	var typos []TypoDetail
	for i := range reference {
		received := constructed[i]
		expected := reference[i]

		if equalAfterPronouns(received, expected) {
			continue
		}

		if match.IsMatch(received, expected) || isTransposition(received, expected) {
			typos = append(typos, TypoDetail{Index: i, Expected: expected, Received: received})
			continue
		}

		if acceptShortWord(received, expected) {
			typos = append(typos, TypoDetail{Index: i, Expected: expected, Received: received})
			continue
		}

		// A genuinely wrong word outside all tolerances fails the sentence.
		return Evaluation{}
	}

	return Evaluation{
		IsCorrect:       true,
		MatchedViaFuzzy: len(typos) > 0,
		TypoDetails:     typos,
	}
}

func equalAfterPronouns(a, b string) bool {
	return canonicalWord(a) == canonicalWord(b)
}

func canonicalWord(word string) string {
	lower := strings.ToLower(word)
	if canonical, ok := pronounVariants[lower]; ok {
		return canonical
	}
	return lower
}

// isTransposition reports whether the two words differ only by one pair of
// adjacent characters being swapped.
func isTransposition(a, b string) bool {
	left := []rune(match.Normalize(a))
	right := []rune(match.Normalize(b))
	if len(left) != len(right) || len(left) < 2 {
		return false
	}

	diffs := make([]int, 0, 3)
	for i := range left {
		if left[i] != right[i] {
			if len(diffs) == 2 {
				return false
			}
			diffs = append(diffs, i)
		}
	}
	if len(diffs) != 2 || diffs[1] != diffs[0]+1 {
		return false
	}
	return left[diffs[0]] == right[diffs[1]] && left[diffs[1]] == right[diffs[0]]
}

func acceptShortWord(received, expected string) bool {
	length := utf8.RuneCountInString(match.Normalize(expected))
	switch {
	case length == 0:
		return false
	case length <= 3:
		return match.SimilarityScore(received, expected) >= shortWordThreshold
	case length == 4:
		return match.SimilarityScore(received, expected) >= fourLetterThreshold
	default:
		return false
	}
}
