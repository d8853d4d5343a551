// Package match grades free-text answers with typo tolerance using
// normalized Levenshtein edit distance.
package match

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the maximum absolute edit distance accepted by IsMatch.
const DefaultThreshold = 2

// relativeTolerance caps the accepted edit distance as a fraction of the
// longer string, so very short inputs are not trivially accepted.
const relativeTolerance = 0.3

var (
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases the string, strips punctuation and collapses
// whitespace runs to single spaces.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = punctuationPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsMatch reports whether the input counts as a correct answer for the
// reference, with the default typo threshold. The reference may list
// multiple acceptable answers separated by "/" or ",".
func IsMatch(input, reference string) bool {
	return IsMatchWithin(input, reference, DefaultThreshold)
}

// IsMatchWithin is IsMatch with an explicit edit distance threshold.
func IsMatchWithin(input, reference string, threshold int) bool {
	normalized := Normalize(input)
	if normalized == "" || strings.TrimSpace(reference) == "" {
		return false
	}

	for _, alternative := range splitAlternatives(reference) {
		candidate := Normalize(alternative)
		if candidate == "" {
			continue
		}
		if normalized == candidate {
			return true
		}

		distance := levenshtein.ComputeDistance(normalized, candidate)
		maxLen := max(utf8.RuneCountInString(normalized), utf8.RuneCountInString(candidate))
		if distance <= threshold && float64(distance) <= relativeTolerance*float64(maxLen) {
			return true
		}
	}
	return false
}

// SimilarityScore returns a similarity in [0, 1] between two strings after
// normalization. Two empty strings score 1.
func SimilarityScore(a, b string) float64 {
	left := Normalize(a)
	right := Normalize(b)

	maxLen := max(utf8.RuneCountInString(left), utf8.RuneCountInString(right))
	if maxLen == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(left, right)
	return 1 - float64(distance)/float64(maxLen)
}

func splitAlternatives(reference string) []string {
	return strings.FieldsFunc(reference, func(r rune) bool {
		return r == '/' || r == ','
	})
}
