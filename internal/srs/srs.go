// Package srs implements the SM-2 spaced repetition algorithm used to
// schedule flashcard reviews.
package srs

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// Intervals in days for the first two successful reviews.
	graduatingInterval = 1
	secondInterval     = 6

	// Cards with an interval of at most this many days are "young".
	youngIntervalDays = 21
)

// ReviewRecord is a single entry in a card's review history. The history is
// append-only and used for retention reporting, never for scheduling.
type ReviewRecord struct {
	Date     time.Time `json:"date"`
	Quality  int       `json:"quality"`
	Interval int       `json:"interval"`
}

// State holds the scheduling state of a single card. A nil *State means the
// card has never been reviewed. States are replaced wholesale on every
// review and never mutated in place.
type State struct {
	Interval       int            `json:"interval"`
	Repetitions    int            `json:"repetitions"`
	EaseFactor     float64        `json:"ease_factor"`
	DueDate        time.Time      `json:"due_date"`
	LastReviewDate time.Time      `json:"last_review_date,omitzero"`
	ReviewHistory  []ReviewRecord `json:"review_history,omitempty"`
	IsNew          bool           `json:"is_new"`
}

// NewState returns the initial scheduling state for an unreviewed card.
func NewState(now time.Time) State {
	return State{
		Interval:    0,
		Repetitions: 0,
		EaseFactor:  DefaultEaseFactor,
		DueDate:     now,
		IsNew:       true,
	}
}

// Quality derives the 0-5 SM-2 quality grade from whether the answer was
// correct and how many hints were consumed for it.
func Quality(isCorrect bool, hintsUsed int) int {
	if isCorrect {
		switch {
		case hintsUsed == 0:
			return 5
		case hintsUsed == 1:
			return 4
		default:
			return 3
		}
	}
	switch {
	case hintsUsed == 0:
		return 0
	case hintsUsed == 1:
		return 1
	default:
		return 2
	}
}

// Update applies one review to a card's scheduling state and returns the new
// state. A nil state is treated as a never-reviewed card. The caller supplies
// the clock so review outcomes are reproducible in tests.
func Update(state *State, isCorrect bool, hintsUsed int, now time.Time) State {
	prev := NewState(now)
	if state != nil {
		prev = *state
	}

	quality := Quality(isCorrect, hintsUsed)

	// The ease factor is recalculated on every review, including failures.
	q := float64(quality)
	ease := math.Max(MinEaseFactor, prev.EaseFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)))

	var interval, repetitions int
	switch {
	case quality < 3:
		// Failed review: back to the learning state regardless of history.
		interval = 0
		repetitions = 0
	case prev.Repetitions == 0:
		interval = graduatingInterval
		repetitions = 1
	case prev.Repetitions == 1:
		interval = secondInterval
		repetitions = 2
	default:
		interval = int(math.Round(float64(prev.Interval) * ease))
		repetitions = prev.Repetitions + 1
	}

	history := make([]ReviewRecord, 0, len(prev.ReviewHistory)+1)
	history = append(history, prev.ReviewHistory...)
	history = append(history, ReviewRecord{
		Date:     now,
		Quality:  quality,
		Interval: interval,
	})

	return State{
		Interval:       interval,
		Repetitions:    repetitions,
		EaseFactor:     ease,
		DueDate:        now.AddDate(0, 0, interval),
		LastReviewDate: now,
		ReviewHistory:  history,
		IsNew:          false,
	}
}

// IsDue reports whether the card should be reviewed at the given time.
func (s *State) IsDue(now time.Time) bool {
	if s == nil {
		return false
	}
	return !s.DueDate.After(now)
}

// Category buckets cards by how well established they are.
type Category string

const (
	CategoryNew      Category = "new"
	CategoryLearning Category = "learning"
	CategoryYoung    Category = "young"
	CategoryMature   Category = "mature"
)

// Category returns the bucket for a card's scheduling state. A nil state
// counts as a new card.
func (s *State) Category() Category {
	switch {
	case s == nil || s.IsNew:
		return CategoryNew
	case s.Interval == 0:
		return CategoryLearning
	case s.Interval <= youngIntervalDays:
		return CategoryYoung
	default:
		return CategoryMature
	}
}

// RetentionRate returns the percentage of successful reviews (quality >= 3)
// in the history. An empty history counts as 100%.
func RetentionRate(history []ReviewRecord) float64 {
	if len(history) == 0 {
		return 100
	}
	successful := 0
	for _, record := range history {
		if record.Quality >= 3 {
			successful++
		}
	}
	return float64(successful) / float64(len(history)) * 100
}
