package session

import (
	"github.com/rvanbeek/flitskaart/internal/deck"
	"github.com/rvanbeek/flitskaart/internal/sentence"
)

// distractorCount is how many extra words pad a sentence's word bank.
const distractorCount = 2

// SentenceManager runs sentence construction sessions: the English sentence
// is shown and the Dutch one must be rebuilt from a scrambled word bank.
type SentenceManager struct {
	*Manager[deck.SentenceCard]
	wordPool []string
}

// NewSentenceManager builds a session manager over a sentence collection.
func NewSentenceManager(cards []deck.SentenceCard, progress ProgressStore, opts Options) *SentenceManager {
	answerFor := func(card deck.SentenceCard) string {
		return card.Dutch
	}

	var pool []string
	for _, card := range cards {
		pool = append(pool, card.Words()...)
	}

	return &SentenceManager{
		Manager:  newManager(cards, progress, false, answerFor, opts),
		wordPool: pool,
	}
}

// WordBank returns the scrambled words of a sentence padded with distractor
// words drawn from the rest of the deck.
func (m *SentenceManager) WordBank(card deck.SentenceCard) []string {
	words := card.Words()
	bank := make([]string, 0, len(words)+distractorCount)
	bank = append(bank, words...)
	bank = append(bank, sentence.PickDistractors(m.wordPool, words, distractorCount, m.rng)...)
	return sentence.Scramble(bank, m.rng)
}

// Grade evaluates a word-by-word reconstruction against the card's Dutch
// sentence.
func (m *SentenceManager) Grade(card deck.SentenceCard, constructed []string) sentence.Evaluation {
	return sentence.Evaluate(constructed, card.Words())
}
