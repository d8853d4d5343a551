// Package deck defines the card variants and loads deck files from disk.
// Decks are YAML documents; parsing them is the only file format knowledge
// in the application, the quiz engines receive plain card slices.
package deck

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Card is the common surface of all reviewable card variants. Keys are
// derived from the card's content so progress survives deck file reordering.
type Card interface {
	Key() string
}

// WordCard is a Dutch-English vocabulary pair. Either side may list
// multiple acceptable answers separated by "/" or ",".
type WordCard struct {
	Dutch   string `yaml:"dutch"`
	English string `yaml:"english"`
}

func (c WordCard) Key() string {
	return fmt.Sprintf("word|%s|%s", strings.ToLower(c.Dutch), strings.ToLower(c.English))
}

// VerbForm names one of the conjugation forms a verb quiz can ask for.
type VerbForm string

const (
	FormInfinitive     VerbForm = "infinitive"
	FormPastSingular   VerbForm = "past_singular"
	FormPastPlural     VerbForm = "past_plural"
	FormPastParticiple VerbForm = "past_participle"
)

// VerbForms lists the quizzable forms in a stable order.
var VerbForms = []VerbForm{FormInfinitive, FormPastSingular, FormPastPlural, FormPastParticiple}

// VerbCard is an irregular Dutch verb with its principal parts.
type VerbCard struct {
	Infinitive     string `yaml:"infinitive"`
	English        string `yaml:"english"`
	PastSingular   string `yaml:"past_singular"`
	PastPlural     string `yaml:"past_plural"`
	PastParticiple string `yaml:"past_participle"`
}

func (c VerbCard) Key() string {
	return "verb|" + strings.ToLower(c.Infinitive)
}

// FormAnswer returns the expected answer for a conjugation form, or "" for
// an unknown form.
func (c VerbCard) FormAnswer(form VerbForm) string {
	switch form {
	case FormInfinitive:
		return c.Infinitive
	case FormPastSingular:
		return c.PastSingular
	case FormPastPlural:
		return c.PastPlural
	case FormPastParticiple:
		return c.PastParticiple
	}
	return ""
}

// SentenceCard is a sentence construction exercise. Difficulty runs from 1
// (short everyday sentences) to 3.
type SentenceCard struct {
	ID         string `yaml:"id"`
	Dutch      string `yaml:"dutch"`
	English    string `yaml:"english"`
	Difficulty int    `yaml:"difficulty"`
}

func (c SentenceCard) Key() string {
	return "sentence|" + c.ID
}

// Words splits the Dutch sentence into its word tokens.
func (c SentenceCard) Words() []string {
	return strings.Fields(c.Dutch)
}

// EnsureID assigns a random id to sentence cards that lack one so their
// progress has a stable key for the rest of the session.
func (c *SentenceCard) EnsureID() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
}
