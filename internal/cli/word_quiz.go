package cli

import (
	"context"
	"fmt"

	"github.com/rvanbeek/flitskaart/internal/session"
)

// WordQuizCLI manages the interactive session for vocabulary cards
type WordQuizCLI struct {
	*QuizCLI
	manager *session.WordManager
}

// NewWordQuizCLI creates a new vocabulary quiz interactive CLI
func NewWordQuizCLI(manager *session.WordManager) *WordQuizCLI {
	return &WordQuizCLI{
		QuizCLI: newQuizCLI(),
		manager: manager,
	}
}

func (r *WordQuizCLI) Session(ctx context.Context) error {
	card, ok := r.manager.Advance()
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "No more cards to practice!")
		return errEnd
	}

	for {
		_, _ = r.bold.Fprintf(r.stdoutWriter, "%s: ", card.Dutch)

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
		case input == "known":
			r.manager.MarkKnown(card)
			fmt.Fprintf(r.stdoutWriter, "Marked %s as known, it won't come up again.\n\n",
				r.bold.Sprintf("%s", card.Dutch))
			return nil
		}

		hintsUsed := r.manager.HintsUsed()
		correct := r.manager.Grade(card, input)
		state := r.manager.RecordAnswer(card, correct, hintsUsed)

		if correct {
			fmt.Fprint(r.stdoutWriter, "✅ ")
			_, _ = r.green.Fprintf(r.stdoutWriter, "It's correct. %s means %s\n",
				r.bold.Sprintf("%s", card.Dutch),
				r.italic.Sprintf("%q", card.English),
			)
		} else {
			fmt.Fprint(r.stdoutWriter, "❌ ")
			_, _ = r.red.Fprintf(r.stdoutWriter, "It's wrong. %s means %s\n",
				r.bold.Sprintf("%s", card.Dutch),
				r.italic.Sprintf("%q", card.English),
			)
		}
		fmt.Fprintf(r.stdoutWriter, "Next review %s.\n\n", formatInterval(state.Interval))
		return nil
	}
}

func formatInterval(days int) string {
	switch days {
	case 0:
		return "later today"
	case 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}
