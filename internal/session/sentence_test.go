package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvanbeek/flitskaart/internal/deck"
	mock_session "github.com/rvanbeek/flitskaart/internal/mocks/session"
	"github.com/rvanbeek/flitskaart/internal/sentence"
)

func sentenceCards() []deck.SentenceCard {
	return []deck.SentenceCard{
		{ID: "s1", Dutch: "ik ga naar huis", English: "I am going home", Difficulty: 1},
		{ID: "s2", Dutch: "de fiets is rood", English: "the bicycle is red", Difficulty: 1},
	}
}

func TestSentenceManagerWordBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := sentenceCards()

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(gomock.Any()).Return(nil).Times(len(cards))

	m := NewSentenceManager(cards, progress, testOptions())

	bank := m.WordBank(cards[0])
	require.Len(t, bank, 6, "four sentence words plus two distractors")
	for _, word := range cards[0].Words() {
		assert.Contains(t, bank, word)
	}
	// Distractors come from the rest of the deck, never from the sentence
	// itself.
	sentenceWords := map[string]bool{}
	for _, word := range cards[0].Words() {
		sentenceWords[word] = true
	}
	otherWords := map[string]bool{}
	for _, word := range cards[1].Words() {
		otherWords[word] = true
	}
	extra := 0
	for _, word := range bank {
		if !sentenceWords[word] {
			extra++
			assert.True(t, otherWords[word], "unexpected distracter %q", word)
		}
	}
	assert.Equal(t, 2, extra)
}

func TestSentenceManagerWordBankWithoutDistractorPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := sentenceCards()[:1]

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(gomock.Any()).Return(nil)

	m := NewSentenceManager(cards, progress, testOptions())

	bank := m.WordBank(cards[0])
	assert.ElementsMatch(t, cards[0].Words(), bank)
}

func TestSentenceManagerGrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := sentenceCards()

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(gomock.Any()).Return(nil).Times(len(cards))

	m := NewSentenceManager(cards, progress, testOptions())

	testCases := []struct {
		name        string
		constructed []string
		isCorrect   bool
		viaFuzzy    bool
	}{
		{
			name:        "exact order",
			constructed: []string{"ik", "ga", "naar", "huis"},
			isCorrect:   true,
		},
		{
			name:        "typo in one word",
			constructed: []string{"ik", "ga", "naar", "huls"},
			isCorrect:   true,
			viaFuzzy:    true,
		},
		{
			name:        "missing word",
			constructed: []string{"ik", "ga", "huis"},
			isCorrect:   false,
		},
		{
			name:        "distracter picked",
			constructed: []string{"ik", "ga", "naar", "fiets"},
			isCorrect:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Grade(cards[0], tc.constructed)
			assert.Equal(t, tc.isCorrect, got.IsCorrect)
			assert.Equal(t, tc.viaFuzzy, got.MatchedViaFuzzy)
		})
	}
}

func TestSentenceManagerGradeReportsTypoDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := sentenceCards()

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(gomock.Any()).Return(nil).Times(len(cards))

	m := NewSentenceManager(cards, progress, testOptions())

	got := m.Grade(cards[0], []string{"ik", "ga", "naar", "huls"})
	require.Len(t, got.TypoDetails, 1)
	assert.Equal(t, sentence.TypoDetail{Index: 3, Expected: "huis", Received: "huls"}, got.TypoDetails[0])
}
