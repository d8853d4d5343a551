package statistics

import (
	"fmt"
	"sort"

	"github.com/rvanbeek/flitskaart/internal/srs"
)

// successThreshold is the lowest review quality that counts as a recalled
// answer.
const successThreshold = 3

// ReviewStatistics holds review counts for a time period.
type ReviewStatistics struct {
	Period        string // "2026-03" for monthly, "2026" for yearly
	NewCards      int    // cards whose first successful review fell in this period
	Reviews       int    // all reviews recorded in this period
	Successes     int    // reviews with a passing quality
	Failures      int    // reviews below the passing quality
	RetentionRate float64
}

// AggregateStatistics holds totals across all periods.
type AggregateStatistics struct {
	NewCards      int
	Reviews       int
	Successes     int
	Failures      int
	RetentionRate float64
}

// Result holds both per-period and aggregate statistics.
type Result struct {
	Periods   []ReviewStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	newCards  int
	reviews   int
	successes int
}

// Calculate derives review statistics from per-card review histories. It
// accepts optional year and month filters (0 means no filter). A card is
// "new" in the period of its first successful review; every recorded review
// counts toward the period's retention rate.
func Calculate(histories map[string][]srs.ReviewRecord, year, month int) Result {
	stats := make(map[string]*periodData)
	aggregate := AggregateStatistics{}

	for _, history := range histories {
		firstSuccessSeen := false
		for _, record := range history {
			if record.Date.IsZero() {
				continue
			}
			success := record.Quality >= successThreshold
			isFirstSuccess := success && !firstSuccessSeen
			if success {
				firstSuccessSeen = true
			}

			recordYear := record.Date.Year()
			recordMonth := int(record.Date.Month())
			if !matchesFilter(recordYear, recordMonth, year, month) {
				continue
			}

			period := fmt.Sprintf("%d-%02d", recordYear, recordMonth)
			if stats[period] == nil {
				stats[period] = &periodData{}
			}

			stats[period].reviews++
			aggregate.Reviews++
			if success {
				stats[period].successes++
				aggregate.Successes++
			}
			if isFirstSuccess {
				stats[period].newCards++
				aggregate.NewCards++
			}
		}
	}

	aggregate.Failures = aggregate.Reviews - aggregate.Successes
	aggregate.RetentionRate = retention(aggregate.Successes, aggregate.Reviews)
	return Result{
		Periods:   buildPeriods(stats),
		Aggregate: aggregate,
	}
}

func buildPeriods(stats map[string]*periodData) []ReviewStatistics {
	periods := make([]ReviewStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, ReviewStatistics{
			Period:        period,
			NewCards:      data.newCards,
			Reviews:       data.reviews,
			Successes:     data.successes,
			Failures:      data.reviews - data.successes,
			RetentionRate: retention(data.successes, data.reviews),
		})
	}

	// Newest first.
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})
	return periods
}

func matchesFilter(recordYear, recordMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if recordYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return recordMonth == filterMonth
}

func retention(successes, reviews int) float64 {
	if reviews == 0 {
		return 100
	}
	return float64(successes) / float64(reviews) * 100
}
