package cli

import (
	"context"
	"fmt"

	"github.com/rvanbeek/flitskaart/internal/deck"
	"github.com/rvanbeek/flitskaart/internal/session"
)

// VerbQuizCLI manages the interactive session for irregular verb cards
type VerbQuizCLI struct {
	*QuizCLI
	manager *session.VerbManager
}

// NewVerbQuizCLI creates a new verb conjugation quiz interactive CLI
func NewVerbQuizCLI(manager *session.VerbManager) *VerbQuizCLI {
	return &VerbQuizCLI{
		QuizCLI: newQuizCLI(),
		manager: manager,
	}
}

var formLabels = map[deck.VerbForm]string{
	deck.FormInfinitive:     "infinitive",
	deck.FormPastSingular:   "past singular",
	deck.FormPastPlural:     "past plural",
	deck.FormPastParticiple: "past participle",
}

func (r *VerbQuizCLI) Session(ctx context.Context) error {
	card, ok := r.manager.Advance()
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "No more verbs to practice!")
		return errEnd
	}
	form := r.manager.CurrentForm()

	for {
		fmt.Fprintf(r.stdoutWriter, "%s of %s (%s): ",
			formLabels[form],
			r.bold.Sprintf("%s", card.Infinitive),
			r.italic.Sprintf("%s", card.English),
		)

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
		correct := r.manager.Grade(card, input)
		state := r.manager.RecordAnswer(card, correct, hintsUsed)

		expected := card.FormAnswer(form)
		if correct {
			fmt.Fprint(r.stdoutWriter, "✅ ")
			_, _ = r.green.Fprintf(r.stdoutWriter, "It's correct. The %s of %s is %s\n",
				formLabels[form],
				r.bold.Sprintf("%s", card.Infinitive),
				r.italic.Sprintf("%q", expected),
			)
		} else {
			fmt.Fprint(r.stdoutWriter, "❌ ")
			_, _ = r.red.Fprintf(r.stdoutWriter, "It's wrong. The %s of %s is %s\n",
				formLabels[form],
				r.bold.Sprintf("%s", card.Infinitive),
				r.italic.Sprintf("%q", expected),
			)
		}
		fmt.Fprintf(r.stdoutWriter, "Next review %s.\n\n", formatInterval(state.Interval))
		return nil
	}
}
