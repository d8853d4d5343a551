package deck

import (
	"fmt"
	"strings"
)

// ValidationError describes a single problem found in a deck file.
type ValidationError struct {
	Location    string
	Message     string
	Suggestions []string
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Location, e.Message)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" [Suggestion: %s]", strings.Join(e.Suggestions, "; "))
	}
	return msg
}

// ValidateWordCards checks word decks for empty sides and duplicate keys.
func ValidateWordCards(cards []WordCard) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]int)

	for i, card := range cards {
		location := fmt.Sprintf("word[%d]: %s", i, card.Dutch)
		if strings.TrimSpace(card.Dutch) == "" {
			errors = append(errors, ValidationError{
				Location: fmt.Sprintf("word[%d]", i),
				Message:  "dutch field is empty",
			})
			continue
		}
		if strings.TrimSpace(card.English) == "" {
			errors = append(errors, ValidationError{
				Location: location,
				Message:  "english field is empty",
			})
			continue
		}
		if firstIndex, ok := seen[card.Key()]; ok {
			errors = append(errors, ValidationError{
				Location: location,
				Message:  fmt.Sprintf("duplicate of word[%d]", firstIndex),
				Suggestions: []string{
					"remove the duplicate entry or merge acceptable answers with '/'",
				},
			})
			continue
		}
		seen[card.Key()] = i
	}
	return errors
}

// ValidateVerbCards checks verb decks for missing principal parts and
// duplicates.
func ValidateVerbCards(cards []VerbCard) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]int)

	for i, card := range cards {
		location := fmt.Sprintf("verb[%d]: %s", i, card.Infinitive)
		if strings.TrimSpace(card.Infinitive) == "" {
			errors = append(errors, ValidationError{
				Location: fmt.Sprintf("verb[%d]", i),
				Message:  "infinitive field is empty",
			})
			continue
		}
		for _, form := range VerbForms {
			if strings.TrimSpace(card.FormAnswer(form)) == "" {
				errors = append(errors, ValidationError{
					Location: location,
					Message:  fmt.Sprintf("%s form is empty", form),
				})
			}
		}
		if strings.TrimSpace(card.English) == "" {
			errors = append(errors, ValidationError{
				Location: location,
				Message:  "english field is empty",
			})
		}
		if firstIndex, ok := seen[card.Key()]; ok {
			errors = append(errors, ValidationError{
				Location: location,
				Message:  fmt.Sprintf("duplicate of verb[%d]", firstIndex),
			})
			continue
		}
		seen[card.Key()] = i
	}
	return errors
}

// ValidateSentenceCards checks sentence decks for empty text, out-of-range
// difficulty and duplicate ids.
func ValidateSentenceCards(cards []SentenceCard) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]int)

	for i, card := range cards {
		location := fmt.Sprintf("sentence[%d]: %s", i, card.ID)
		if strings.TrimSpace(card.Dutch) == "" {
			errors = append(errors, ValidationError{
				Location: location,
				Message:  "dutch field is empty",
			})
			continue
		}
		if strings.TrimSpace(card.English) == "" {
			errors = append(errors, ValidationError{
				Location: location,
				Message:  "english field is empty",
			})
		}
		if card.Difficulty < 1 || card.Difficulty > 3 {
			errors = append(errors, ValidationError{
				Location: location,
				Message:  fmt.Sprintf("difficulty %d is out of range", card.Difficulty),
				Suggestions: []string{
					"use a difficulty between 1 and 3",
				},
			})
		}
		if card.ID != "" {
			if firstIndex, ok := seen[card.ID]; ok {
				errors = append(errors, ValidationError{
					Location: location,
					Message:  fmt.Sprintf("duplicate id, first used by sentence[%d]", firstIndex),
				})
				continue
			}
			seen[card.ID] = i
		}
	}
	return errors
}
