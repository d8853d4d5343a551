package session

import (
	"github.com/rvanbeek/flitskaart/internal/deck"
	"github.com/rvanbeek/flitskaart/internal/match"
)

// quizzableForms are the conjugations a verb session asks for; the
// infinitive itself is shown in the prompt.
var quizzableForms = []deck.VerbForm{
	deck.FormPastSingular,
	deck.FormPastPlural,
	deck.FormPastParticiple,
}

// VerbManager runs irregular-verb sessions. Each time a verb comes up one
// of its past forms is drawn at random as the question.
type VerbManager struct {
	*Manager[deck.VerbCard]
	form   deck.VerbForm
	pinned deck.VerbForm
}

// NewVerbManager builds a session manager over a verb collection.
func NewVerbManager(cards []deck.VerbCard, progress ProgressStore, opts Options) *VerbManager {
	m := &VerbManager{}
	answerFor := func(card deck.VerbCard) string {
		return card.FormAnswer(m.form)
	}
	m.Manager = newManager(cards, progress, false, answerFor, opts)
	m.form = quizzableForms[0]
	return m
}

// PinForm fixes the quizzed conjugation instead of drawing one at random,
// for drilling a single form.
func (m *VerbManager) PinForm(form deck.VerbForm) {
	m.pinned = form
	m.form = form
}

// Advance moves to the next verb and draws the form to ask for.
func (m *VerbManager) Advance() (deck.VerbCard, bool) {
	card, ok := m.Manager.Advance()
	if ok && m.pinned == "" {
		m.form = quizzableForms[m.rng.Intn(len(quizzableForms))]
	}
	return card, ok
}

// CurrentForm is the conjugation form the current question asks for.
func (m *VerbManager) CurrentForm() deck.VerbForm {
	return m.form
}

// Grade reports whether the input matches the requested form of the verb.
func (m *VerbManager) Grade(card deck.VerbCard, input string) bool {
	expected := card.FormAnswer(m.form)
	if expected == "" {
		m.logger.Warn("no answer for requested verb form")
		return false
	}
	return match.IsMatch(input, expected)
}
