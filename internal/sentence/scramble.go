package sentence

import (
	"math/rand"
	"strings"
)

// maxScrambleAttempts bounds the reshuffles used to avoid presenting a word
// bank that starts with the sentence's real first word.
const maxScrambleAttempts = 10

// Scramble returns the words in a random order. When any other arrangement
// exists, the first word of the result differs from the first word of the
// input so the bank does not look pre-solved.
func Scramble(words []string, rng *rand.Rand) []string {
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	if len(words) < 2 {
		return shuffled
	}

	for attempt := 0; attempt < maxScrambleAttempts; attempt++ {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if !strings.EqualFold(shuffled[0], words[0]) {
			break
		}
	}
	return shuffled
}

// PickDistractors draws up to n distinct words from the pool, skipping words
// already present in the sentence.
func PickDistractors(pool, sentenceWords []string, n int, rng *rand.Rand) []string {
	used := make(map[string]struct{}, len(sentenceWords))
	for _, word := range sentenceWords {
		used[strings.ToLower(word)] = struct{}{}
	}

	candidates := make([]string, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))
	for _, word := range pool {
		lower := strings.ToLower(word)
		if _, ok := used[lower]; ok {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		candidates = append(candidates, word)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
