package cli

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rvanbeek/flitskaart/internal/deck"
	mock_session "github.com/rvanbeek/flitskaart/internal/mocks/session"
	"github.com/rvanbeek/flitskaart/internal/session"
	"github.com/rvanbeek/flitskaart/internal/store"
)

func newTestSentenceManager(t *testing.T, cards []deck.SentenceCard) *session.SentenceManager {
	t.Helper()
	ctrl := gomock.NewController(t)
	progress := mock_session.NewMockProgressStore(ctrl)
	progress.EXPECT().LoadState(gomock.Any()).Return(nil).AnyTimes()
	progress.EXPECT().LoadKnown(gomock.Any()).Return(false).AnyTimes()
	progress.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	progress.EXPECT().SchedulerConfig().Return(store.SchedulerConfig{DailyNewCardLimit: 20}).AnyTimes()
	progress.EXPECT().NewCardsSeenToday(gomock.Any()).Return(0).AnyTimes()
	progress.EXPECT().IncrementNewCardsSeen(gomock.Any()).Return(nil).AnyTimes()

	return session.NewSentenceManager(cards, progress, session.Options{
		Rand:  rand.New(rand.NewSource(1)),
		Clock: func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) },
	})
}

func TestSentenceQuizCLISession(t *testing.T) {
	cards := []deck.SentenceCard{
		{ID: "s1", Dutch: "ik ga naar huis", English: "I am going home", Difficulty: 1},
	}

	tests := []struct {
		name        string
		input       string
		wantReturn  error
		wantOutputs []string
	}{
		{
			name:        "correct construction",
			input:       "ik ga naar huis\n",
			wantOutputs: []string{"Word bank:", "It's correct."},
		},
		{
			name:        "typo is accepted and reported",
			input:       "ik ga naar huls\n",
			wantOutputs: []string{"It's correct.", "word 4 should be", "huis"},
		},
		{
			name:        "wrong construction",
			input:       "ik ga huis naar\n",
			wantOutputs: []string{"It's wrong.", "ik ga naar huis"},
		},
		{
			name:        "quit",
			input:       "quit\n",
			wantReturn:  errEnd,
			wantOutputs: []string{"Practice session ended."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, output := newTestQuizCLI(tt.input)
			cli := &SentenceQuizCLI{
				QuizCLI: base,
				manager: newTestSentenceManager(t, cards),
			}

			err := cli.Session(context.Background())
			if tt.wantReturn != nil {
				assert.Equal(t, tt.wantReturn, err)
			} else {
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOutputs {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}
