package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rvanbeek/flitskaart/internal/session"
)

// SentenceQuizCLI manages the interactive session for sentence construction
type SentenceQuizCLI struct {
	*QuizCLI
	manager *session.SentenceManager
}

// NewSentenceQuizCLI creates a new sentence construction quiz interactive CLI
func NewSentenceQuizCLI(manager *session.SentenceManager) *SentenceQuizCLI {
	return &SentenceQuizCLI{
		QuizCLI: newQuizCLI(),
		manager: manager,
	}
}

func (r *SentenceQuizCLI) Session(ctx context.Context) error {
	card, ok := r.manager.Advance()
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "No more sentences to practice!")
		return errEnd
	}
	bank := r.manager.WordBank(card)

	for {
		fmt.Fprintf(r.stdoutWriter, "Translate: %s\n", r.italic.Sprintf("%s", card.English))
		fmt.Fprintf(r.stdoutWriter, "Word bank: %s\n", r.bold.Sprintf("%s", strings.Join(bank, " | ")))
		fmt.Fprint(r.stdoutWriter, "Sentence: ")

		input, err := r.readLine()
		if err != nil {
			return err
		}

		switch {
		case isQuitCommand(input):
			fmt.Fprintln(r.stdoutWriter, "Practice session ended.")
			return errEnd
		case input == "hint":
			fmt.Fprintf(r.stdoutWriter, "Hint: %s\n", r.manager.NextHint())
			continue
		}

		hintsUsed := r.manager.HintsUsed()
		evaluation := r.manager.Grade(card, strings.Fields(input))
		state := r.manager.RecordAnswer(card, evaluation.IsCorrect, hintsUsed)

		if evaluation.IsCorrect {
			fmt.Fprint(r.stdoutWriter, "✅ ")
			_, _ = r.green.Fprintf(r.stdoutWriter, "It's correct. %s\n",
				r.bold.Sprintf("%s", card.Dutch))
			for _, typo := range evaluation.TypoDetails {
				fmt.Fprintf(r.stdoutWriter, "Almost: word %d should be %s, you wrote %s\n",
					typo.Index+1,
					r.italic.Sprintf("%q", typo.Expected),
					r.italic.Sprintf("%q", typo.Received),
				)
			}
		} else {
			fmt.Fprint(r.stdoutWriter, "❌ ")
			_, _ = r.red.Fprintf(r.stdoutWriter, "It's wrong. The sentence is %s\n",
				r.bold.Sprintf("%q", card.Dutch))
		}
		fmt.Fprintf(r.stdoutWriter, "Next review %s.\n\n", formatInterval(state.Interval))
		return nil
	}
}
