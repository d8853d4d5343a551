package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvanbeek/flitskaart/internal/deck"
	"github.com/rvanbeek/flitskaart/internal/scheduler"
	"github.com/rvanbeek/flitskaart/internal/srs"
	"github.com/rvanbeek/flitskaart/internal/statistics"
	"github.com/rvanbeek/flitskaart/internal/store"
)

func newStatsCommand() *cobra.Command {
	var year, month int

	command := &cobra.Command{
		Use:   "stats",
		Short: "Review statistics and upcoming workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			progress, closeProgress, err := openProgress(cfg)
			if err != nil {
				return err
			}
			defer closeProgress()

			histories, err := progress.ReviewHistories()
			if err != nil {
				return fmt.Errorf("progress.ReviewHistories() > %w", err)
			}

			result := statistics.Calculate(histories, year, month)
			printStatistics(result)
			printWorkload(cfg.Decks.WordsDirectory, progress)
			return nil
		},
	}
	command.Flags().IntVar(&year, "year", 0, "Only count reviews from this year")
	command.Flags().IntVar(&month, "month", 0, "Only count reviews from this month (requires --year)")

	return command
}

func printStatistics(result statistics.Result) {
	if len(result.Periods) == 0 {
		fmt.Println("No reviews recorded yet.")
		return
	}

	fmt.Println("Period   New cards  Reviews  Correct  Retention")
	for _, period := range result.Periods {
		fmt.Printf("%-8s %9d %8d %8d %9.1f%%\n",
			period.Period, period.NewCards, period.Reviews, period.Successes, period.RetentionRate)
	}
	fmt.Printf("\nTotal: %d new cards, %d reviews, %.1f%% retention\n",
		result.Aggregate.NewCards, result.Aggregate.Reviews, result.Aggregate.RetentionRate)
}

// printWorkload shows how the word deck is distributed over the maturity
// categories and what is due. Failing to load the deck only skips this
// section, the history statistics above already printed.
func printWorkload(wordsDir string, progress *store.Progress) {
	cards, err := deck.LoadWordCards(wordsDir)
	if err != nil || len(cards) == 0 {
		return
	}

	items := make([]scheduler.Item, 0, len(cards))
	for _, card := range cards {
		items = append(items, scheduler.Item{Key: card.Key(), State: progress.LoadState(card.Key())})
	}

	counts := scheduler.CategoryCounts(items)
	forecast := scheduler.UpcomingReviews(items, time.Now())

	fmt.Println()
	fmt.Printf("Word deck: %d new, %d learning, %d young, %d mature\n",
		counts[srs.CategoryNew], counts[srs.CategoryLearning],
		counts[srs.CategoryYoung], counts[srs.CategoryMature])
	fmt.Printf("Due now: %d, due today: %d, due this week: %d\n",
		forecast.DueNow, forecast.DueToday, forecast.DueThisWeek)
}
