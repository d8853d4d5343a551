// Package scheduler selects and orders flashcards for a study session,
// merging overdue reviews with a capped stream of new cards.
package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rvanbeek/flitskaart/internal/srs"
)

// Item pairs a card's content-derived key with its scheduling state. A nil
// state means the card has never been reviewed.
type Item struct {
	Key   string
	State *srs.State
}

// Config carries the session-level limits.
type Config struct {
	// DailyNewCardLimit caps how many new cards are introduced per day.
	DailyNewCardLimit int
	// SessionCap truncates the selected session when positive.
	SessionCap int
}

// DefaultDailyNewCardLimit applies when no limit was configured.
const DefaultDailyNewCardLimit = 20

// SelectSession returns the cards to present, most overdue reviews first,
// followed by up to (limit - newCardsSeenToday) randomly chosen new cards.
// Cards the caller considers mastered must be filtered out beforehand. The
// ordering is deterministic for a seeded rng.
func SelectSession(items []Item, cfg Config, newCardsSeenToday int, now time.Time, rng *rand.Rand) []Item {
	var due, fresh []Item
	for _, item := range items {
		switch {
		case item.State == nil || item.State.IsNew:
			fresh = append(fresh, item)
		case item.State.IsDue(now):
			due = append(due, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].State.DueDate.Before(due[j].State.DueDate)
	})

	remaining := cfg.DailyNewCardLimit - newCardsSeenToday
	if remaining < 0 {
		remaining = 0
	}
	rng.Shuffle(len(fresh), func(i, j int) {
		fresh[i], fresh[j] = fresh[j], fresh[i]
	})
	if remaining < len(fresh) {
		fresh = fresh[:remaining]
	}

	session := append(due, fresh...)
	if cfg.SessionCap > 0 && len(session) > cfg.SessionCap {
		session = session[:cfg.SessionCap]
	}
	return session
}

// ReviewForecast summarizes how much work is pending.
type ReviewForecast struct {
	DueNow            int
	DueToday          int
	DueThisWeek       int
	NewCardsAvailable int
	TotalCards        int
}

// UpcomingReviews counts pending reviews at several horizons. "Today" runs
// through local midnight inclusive; "this week" is a rolling seven days.
func UpcomingReviews(items []Item, now time.Time) ReviewForecast {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	endOfWeek := now.AddDate(0, 0, 7)

	forecast := ReviewForecast{TotalCards: len(items)}
	for _, item := range items {
		if item.State == nil || item.State.IsNew {
			forecast.NewCardsAvailable++
			continue
		}
		due := item.State.DueDate
		if !due.After(now) {
			forecast.DueNow++
		}
		if !due.After(endOfDay) {
			forecast.DueToday++
		}
		if !due.After(endOfWeek) {
			forecast.DueThisWeek++
		}
	}
	return forecast
}

// CategoryCounts tallies cards into the four maturity buckets.
func CategoryCounts(items []Item) map[srs.Category]int {
	counts := map[srs.Category]int{
		srs.CategoryNew:      0,
		srs.CategoryLearning: 0,
		srs.CategoryYoung:    0,
		srs.CategoryMature:   0,
	}
	for _, item := range items {
		counts[item.State.Category()]++
	}
	return counts
}
