package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvanbeek/flitskaart/internal/deck"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the deck files for duplicates and missing fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			total := 0

			words, err := deck.LoadWordCards(cfg.Decks.WordsDirectory)
			if err != nil {
				return fmt.Errorf("deck.LoadWordCards(%s) > %w", cfg.Decks.WordsDirectory, err)
			}
			total += printValidationErrors("word", deck.ValidateWordCards(words))

			verbs, err := deck.LoadVerbCards(cfg.Decks.VerbsDirectory)
			if err != nil {
				return fmt.Errorf("deck.LoadVerbCards(%s) > %w", cfg.Decks.VerbsDirectory, err)
			}
			total += printValidationErrors("verb", deck.ValidateVerbCards(verbs))

			sentences, err := deck.LoadSentenceCards(cfg.Decks.SentencesDirectory)
			if err != nil {
				return fmt.Errorf("deck.LoadSentenceCards(%s) > %w", cfg.Decks.SentencesDirectory, err)
			}
			total += printValidationErrors("sentence", deck.ValidateSentenceCards(sentences))

			if total > 0 {
				return fmt.Errorf("validation failed with %d issue(s)", total)
			}

			fmt.Printf("All decks are valid: %d words, %d verbs, %d sentences.\n",
				len(words), len(verbs), len(sentences))
			return nil
		},
	}
}

func printValidationErrors(deckName string, validationErrors []deck.ValidationError) int {
	for _, validationError := range validationErrors {
		fmt.Printf("%s deck: %v\n", deckName, validationError)
	}
	return len(validationErrors)
}
