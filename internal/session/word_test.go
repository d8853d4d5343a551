package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvanbeek/flitskaart/internal/deck"
	mock_session "github.com/rvanbeek/flitskaart/internal/mocks/session"
	"github.com/rvanbeek/flitskaart/internal/store"
)

func TestWordManagerGrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	card := deck.WordCard{Dutch: "huis", English: "house"}

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(card.Key()).Return(nil)

	m := NewWordManager([]deck.WordCard{card}, progress, testOptions())

	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "exact", input: "house", expected: true},
		{name: "case and punctuation ignored", input: "  House! ", expected: true},
		{name: "small typo", input: "housr", expected: true},
		{name: "wrong word", input: "mouse trap", expected: false},
		{name: "empty", input: "", expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, m.Grade(card, tc.input))
		})
	}
}

func TestWordManagerMarkKnownExcludesCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := []deck.WordCard{
		{Dutch: "huis", English: "house"},
		{Dutch: "fiets", English: "bicycle"},
	}

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(cards[0].Key()).
		Return(reviewedState(sessionTime.Add(-2 * time.Hour)))
	progress.EXPECT().LoadState(cards[1].Key()).
		Return(reviewedState(sessionTime.Add(-time.Hour)))
	progress.EXPECT().SaveKnown(cards[0].Key(), true).Return(nil)
	progress.EXPECT().LoadKnown(cards[0].Key()).Return(true).AnyTimes()
	progress.EXPECT().LoadKnown(cards[1].Key()).Return(false).AnyTimes()
	progress.EXPECT().SchedulerConfig().Return(store.SchedulerConfig{DailyNewCardLimit: 20}).AnyTimes()
	progress.EXPECT().NewCardsSeenToday(sessionTime).Return(0).AnyTimes()

	m := NewWordManager(cards, progress, testOptions())
	m.MarkKnown(cards[0])

	// The known card never comes up again.
	for i := 0; i < 3; i++ {
		card, ok := m.Advance()
		require.True(t, ok)
		assert.Equal(t, "fiets", card.Dutch)
	}
}

func TestWordManagerMarkKnownToleratesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	card := deck.WordCard{Dutch: "huis", English: "house"}

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(card.Key()).Return(nil)
	progress.EXPECT().SaveKnown(card.Key(), true).Return(assert.AnError)

	m := NewWordManager([]deck.WordCard{card}, progress, testOptions())
	m.MarkKnown(card)
}
