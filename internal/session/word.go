package session

import (
	"go.uber.org/zap"

	"github.com/rvanbeek/flitskaart/internal/deck"
	"github.com/rvanbeek/flitskaart/internal/match"
)

// WordManager runs vocabulary sessions: the Dutch word is prompted and the
// English translation is the expected answer. Cards marked known are left
// out of scheduling entirely.
type WordManager struct {
	*Manager[deck.WordCard]
}

// NewWordManager builds a session manager over a word collection.
func NewWordManager(cards []deck.WordCard, progress ProgressStore, opts Options) *WordManager {
	answerFor := func(card deck.WordCard) string {
		return card.English
	}
	return &WordManager{
		Manager: newManager(cards, progress, true, answerFor, opts),
	}
}

// Grade reports whether the input counts as a correct translation.
func (m *WordManager) Grade(card deck.WordCard, input string) bool {
	return match.IsMatch(input, card.English)
}

// MarkKnown flags a card as already mastered so the scheduler stops
// offering it. The flag lives outside the SM-2 state and survives resets of
// the current session.
func (m *WordManager) MarkKnown(card deck.WordCard) {
	if err := m.progress.SaveKnown(card.Key(), true); err != nil {
		m.logger.Warn("failed to persist known flag",
			zap.String("card", card.Key()), zap.Error(err))
	}
	// Force a reschedule so the card disappears immediately.
	m.queue = nil
	m.queuePos = 0
}
