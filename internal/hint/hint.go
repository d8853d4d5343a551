// Package hint builds progressive masked-reveal hints for quiz answers.
package hint

import "unicode"

const (
	MinLevel = 1
	MaxLevel = 4
)

// ForLevel returns the hint text for the given level:
//
//	1: first character only
//	2: first character with the rest masked
//	3: first and last characters with the interior masked
//	4: the full answer
//
// Levels outside [MinLevel, MaxLevel] and empty answers yield "".
func ForLevel(answer string, level int) string {
	runes := []rune(answer)
	if len(runes) == 0 || level < MinLevel || level > MaxLevel {
		return ""
	}

	switch level {
	case 1:
		return string(runes[0])
	case 2:
		masked := make([]rune, len(runes))
		masked[0] = runes[0]
		for i := 1; i < len(runes); i++ {
			masked[i] = maskRune(runes[i])
		}
		return string(masked)
	case 3:
		if len(runes) <= 2 {
			return answer
		}
		masked := make([]rune, len(runes))
		masked[0] = runes[0]
		masked[len(runes)-1] = runes[len(runes)-1]
		for i := 1; i < len(runes)-1; i++ {
			masked[i] = maskRune(runes[i])
		}
		return string(masked)
	default:
		return answer
	}
}

// maskRune hides letters but keeps spaces and punctuation visible so the
// answer's shape stays recognizable.
func maskRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return '*'
	}
	return r
}
