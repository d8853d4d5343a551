package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rvanbeek/flitskaart/internal/cli"
	"github.com/rvanbeek/flitskaart/internal/deck"
	"github.com/rvanbeek/flitskaart/internal/session"
)

// verbFormFlag restricts the --form flag to the quizzable conjugations.
type verbFormFlag deck.VerbForm

func (f *verbFormFlag) Set(val string) error {
	for _, form := range deck.VerbForms {
		if form == deck.FormInfinitive {
			continue
		}
		if val == string(form) {
			*f = verbFormFlag(form)
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join([]string{
		string(deck.FormPastSingular),
		string(deck.FormPastPlural),
		string(deck.FormPastParticiple),
	}, ", "))
}

func (f *verbFormFlag) String() string {
	return string(*f)
}

func (f *verbFormFlag) Type() string {
	return "form"
}

var _ pflag.Value = (*verbFormFlag)(nil)

func newQuizCommand() *cobra.Command {
	var sessionCap int

	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Interactive quiz sessions for the configured decks",
	}
	quizCommand.PersistentFlags().IntVar(&sessionCap, "limit", 0, "Maximum cards per session (0 means no limit)")

	quizCommand.AddCommand(newQuizWordsCommand(&sessionCap))
	quizCommand.AddCommand(newQuizVerbsCommand(&sessionCap))
	quizCommand.AddCommand(newQuizSentencesCommand(&sessionCap))

	return quizCommand
}

func newQuizWordsCommand(sessionCap *int) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Vocabulary quiz (shows the Dutch word, you type the English translation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cards, err := deck.LoadWordCards(cfg.Decks.WordsDirectory)
			if err != nil {
				return fmt.Errorf("deck.LoadWordCards(%s) > %w", cfg.Decks.WordsDirectory, err)
			}
			if len(cards) == 0 {
				return fmt.Errorf("no word cards found in %s", cfg.Decks.WordsDirectory)
			}

			progress, closeProgress, err := openProgress(cfg)
			if err != nil {
				return err
			}
			defer closeProgress()

			manager := session.NewWordManager(cards, progress, session.Options{
				SessionCap: resolveSessionCap(cfg.Scheduler.SessionCap, *sessionCap),
				Logger:     logger,
			})
			wordCLI := cli.NewWordQuizCLI(manager)

			fmt.Println("Vocabulary practice session started!")
			fmt.Println("Type the English translation. Commands: 'hint', 'known', 'quit'.")
			fmt.Println()
			if err := wordCLI.Run(context.Background(), wordCLI); err != nil {
				return err
			}
			printSessionSummary(manager.HintStats(), manager.RetentionRate())
			return nil
		},
	}
}

func newQuizVerbsCommand(sessionCap *int) *cobra.Command {
	var form verbFormFlag

	command := &cobra.Command{
		Use:   "verbs",
		Short: "Irregular verb quiz (shows the infinitive, you type the requested form)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cards, err := deck.LoadVerbCards(cfg.Decks.VerbsDirectory)
			if err != nil {
				return fmt.Errorf("deck.LoadVerbCards(%s) > %w", cfg.Decks.VerbsDirectory, err)
			}
			if len(cards) == 0 {
				return fmt.Errorf("no verb cards found in %s", cfg.Decks.VerbsDirectory)
			}

			progress, closeProgress, err := openProgress(cfg)
			if err != nil {
				return err
			}
			defer closeProgress()

			manager := session.NewVerbManager(cards, progress, session.Options{
				SessionCap: resolveSessionCap(cfg.Scheduler.SessionCap, *sessionCap),
				Logger:     logger,
			})
			if form != "" {
				manager.PinForm(deck.VerbForm(form))
			}
			verbCLI := cli.NewVerbQuizCLI(manager)

			fmt.Println("Irregular verb practice session started!")
			fmt.Println("Type the requested conjugation. Commands: 'hint', 'quit'.")
			fmt.Println()
			if err := verbCLI.Run(context.Background(), verbCLI); err != nil {
				return err
			}
			printSessionSummary(manager.HintStats(), manager.RetentionRate())
			return nil
		},
	}
	command.Flags().Var(&form, "form", "Drill a single conjugation form instead of a random one")

	return command
}

func newQuizSentencesCommand(sessionCap *int) *cobra.Command {
	return &cobra.Command{
		Use:   "sentences",
		Short: "Sentence construction quiz (rebuild the Dutch sentence from a word bank)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cards, err := deck.LoadSentenceCards(cfg.Decks.SentencesDirectory)
			if err != nil {
				return fmt.Errorf("deck.LoadSentenceCards(%s) > %w", cfg.Decks.SentencesDirectory, err)
			}
			if len(cards) == 0 {
				return fmt.Errorf("no sentence cards found in %s", cfg.Decks.SentencesDirectory)
			}

			progress, closeProgress, err := openProgress(cfg)
			if err != nil {
				return err
			}
			defer closeProgress()

			manager := session.NewSentenceManager(cards, progress, session.Options{
				SessionCap: resolveSessionCap(cfg.Scheduler.SessionCap, *sessionCap),
				Logger:     logger,
			})
			sentenceCLI := cli.NewSentenceQuizCLI(manager)

			fmt.Println("Sentence construction session started!")
			fmt.Println("Type the words of the Dutch sentence in order. Commands: 'hint', 'quit'.")
			fmt.Println()
			if err := sentenceCLI.Run(context.Background(), sentenceCLI); err != nil {
				return err
			}
			printSessionSummary(manager.HintStats(), manager.RetentionRate())
			return nil
		},
	}
}

func printSessionSummary(hintStats session.HintStats, retentionRate float64) {
	if hintStats.QuestionsSeen == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Session summary: %d cards seen, %d hints used on %d cards.\n",
		hintStats.QuestionsSeen, hintStats.TotalHints, hintStats.QuestionsWithHints)
	fmt.Printf("Overall retention rate: %.1f%%\n", retentionRate)
}
