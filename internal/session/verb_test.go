package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvanbeek/flitskaart/internal/deck"
	mock_session "github.com/rvanbeek/flitskaart/internal/mocks/session"
	"github.com/rvanbeek/flitskaart/internal/store"
)

func lopenCard() deck.VerbCard {
	return deck.VerbCard{
		Infinitive:     "lopen",
		PastSingular:   "liep",
		PastPlural:     "liepen",
		PastParticiple: "gelopen",
		English:        "to walk",
	}
}

func TestVerbManagerDrawsPastForms(t *testing.T) {
	ctrl := gomock.NewController(t)
	card := lopenCard()

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(card.Key()).Return(nil)
	progress.EXPECT().LoadKnown(gomock.Any()).Return(false).AnyTimes()
	progress.EXPECT().SchedulerConfig().Return(store.SchedulerConfig{DailyNewCardLimit: 20}).AnyTimes()
	progress.EXPECT().NewCardsSeenToday(gomock.Any()).Return(0).AnyTimes()

	m := NewVerbManager([]deck.VerbCard{card}, progress, testOptions())

	for i := 0; i < 10; i++ {
		_, ok := m.Advance()
		require.True(t, ok)
		form := m.CurrentForm()
		assert.Contains(t, quizzableForms, form)
		assert.NotEqual(t, deck.FormInfinitive, form, "the infinitive is the prompt, not the question")
	}
}

func TestVerbManagerPinForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	card := lopenCard()

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(card.Key()).Return(nil)
	progress.EXPECT().LoadKnown(gomock.Any()).Return(false).AnyTimes()
	progress.EXPECT().SchedulerConfig().Return(store.SchedulerConfig{DailyNewCardLimit: 20}).AnyTimes()
	progress.EXPECT().NewCardsSeenToday(gomock.Any()).Return(0).AnyTimes()

	m := NewVerbManager([]deck.VerbCard{card}, progress, testOptions())
	m.PinForm(deck.FormPastParticiple)

	for i := 0; i < 5; i++ {
		_, ok := m.Advance()
		require.True(t, ok)
		assert.Equal(t, deck.FormPastParticiple, m.CurrentForm())
	}
}

func TestVerbManagerGrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	card := lopenCard()

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(card.Key()).Return(nil)

	m := NewVerbManager([]deck.VerbCard{card}, progress, testOptions())

	testCases := []struct {
		name     string
		form     deck.VerbForm
		input    string
		expected bool
	}{
		{name: "past singular exact", form: deck.FormPastSingular, input: "liep", expected: true},
		{name: "past plural with typo", form: deck.FormPastPlural, input: "liepn", expected: true},
		{name: "participle", form: deck.FormPastParticiple, input: "gelopen", expected: true},
		{name: "wrong form given", form: deck.FormPastSingular, input: "gelopen", expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m.form = tc.form
			assert.Equal(t, tc.expected, m.Grade(card, tc.input))
		})
	}
}

func TestVerbManagerGradeMissingForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	card := deck.VerbCard{Infinitive: "zijn", English: "to be"}

	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(card.Key()).Return(nil)

	m := NewVerbManager([]deck.VerbCard{card}, progress, testOptions())
	m.form = deck.FormPastParticiple

	assert.False(t, m.Grade(card, "geweest"), "a card without the requested form cannot be graded correct")
}
