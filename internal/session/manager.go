// Package session orchestrates study sessions: it asks the scheduler which
// card to show next, grades answers, feeds results into the SM-2 algorithm
// and persists the outcome.
package session

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/rvanbeek/flitskaart/internal/deck"
	"github.com/rvanbeek/flitskaart/internal/hint"
	"github.com/rvanbeek/flitskaart/internal/scheduler"
	"github.com/rvanbeek/flitskaart/internal/srs"
	"github.com/rvanbeek/flitskaart/internal/store"
)

//go:generate mockgen -source=manager.go -destination=../mocks/session/mock_progress_store.go -package=mock_session ProgressStore

// ProgressStore is the persistence surface the managers write progress
// through. *store.Progress implements it.
type ProgressStore interface {
	LoadState(cardKey string) *srs.State
	SaveState(cardKey string, state srs.State) error
	LoadKnown(cardKey string) bool
	SaveKnown(cardKey string, known bool) error
	NewCardsSeenToday(now time.Time) int
	IncrementNewCardsSeen(now time.Time) error
	SchedulerConfig() store.SchedulerConfig
}

var _ ProgressStore = (*store.Progress)(nil)

// Options tune a manager. Zero values pick production defaults; tests inject
// a seeded rng and a fixed clock.
type Options struct {
	Rand       *rand.Rand
	Clock      func() time.Time
	SessionCap int
	Logger     *zap.Logger
}

// Manager drives one card collection through study sessions. It owns the
// in-memory collection keyed by content-derived card keys, the scheduler
// ordering and the recency window.
type Manager[C deck.Card] struct {
	logger   *zap.Logger
	progress ProgressStore
	rng      *rand.Rand
	clock    func() time.Time

	sessionCap  int
	filterKnown bool
	answerFor   func(C) string

	order  []string
	cards  map[string]C
	states map[string]*srs.State

	queue    []string
	queuePos int
	recency  *scheduler.RecencyWindow
	current  string

	hints hintTracker
}

func newManager[C deck.Card](cards []C, progress ProgressStore, filterKnown bool, answerFor func(C) string, opts Options) *Manager[C] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	m := &Manager[C]{
		logger:      logger,
		progress:    progress,
		rng:         rng,
		clock:       clock,
		sessionCap:  opts.SessionCap,
		filterKnown: filterKnown,
		answerFor:   answerFor,
		cards:       make(map[string]C, len(cards)),
		states:      make(map[string]*srs.State, len(cards)),
		recency:     scheduler.NewRecencyWindow(scheduler.DefaultRecencyWindow),
	}
	for _, card := range cards {
		key := card.Key()
		if _, ok := m.cards[key]; ok {
			logger.Warn("duplicate card key in collection, keeping the first", zap.String("card", key))
			continue
		}
		m.order = append(m.order, key)
		m.cards[key] = card
		m.states[key] = progress.LoadState(key)
	}
	return m
}

// Current returns the card being studied, or false before the first Advance
// or once the collection is exhausted.
func (m *Manager[C]) Current() (C, bool) {
	var zero C
	if m.current == "" {
		return zero, false
	}
	return m.cards[m.current], true
}

// Advance moves to the next scheduled card, re-running the scheduler when
// the previous ordering is used up. Recently shown cards are skipped for a
// bounded number of attempts; small collections inevitably repeat.
func (m *Manager[C]) Advance() (C, bool) {
	var zero C
	if m.queuePos >= len(m.queue) {
		m.rebuildQueue()
	}
	if m.queuePos >= len(m.queue) {
		m.current = ""
		return zero, false
	}

	attempts := 0
	for {
		key := m.queue[m.queuePos]
		m.queuePos++
		if attempts >= scheduler.MaxSkipAttempts || !m.recency.Contains(key) {
			m.current = key
			m.recency.Push(key)
			m.hints.reset()
			m.hints.stats.QuestionsSeen++
			return m.cards[key], true
		}
		// Push the recent card to the back and try the next one.
		m.queue = append(m.queue, key)
		attempts++
	}
}

func (m *Manager[C]) rebuildQueue() {
	now := m.clock()
	items := make([]scheduler.Item, 0, len(m.order))
	for _, key := range m.order {
		if m.filterKnown && m.progress.LoadKnown(key) {
			continue
		}
		items = append(items, scheduler.Item{Key: key, State: m.states[key]})
	}

	cfg := scheduler.Config{
		DailyNewCardLimit: m.progress.SchedulerConfig().DailyNewCardLimit,
		SessionCap:        m.sessionCap,
	}
	selected := scheduler.SelectSession(items, cfg, m.progress.NewCardsSeenToday(now), now, m.rng)

	m.queue = make([]string, len(selected))
	for i, item := range selected {
		m.queue[i] = item.Key
	}
	m.queuePos = 0
}

// RecordAnswer grades one review: it derives the SM-2 update from the
// outcome, replaces the card's scheduling state and persists it. Store
// failures are logged, never propagated; the session continues on the
// in-memory state.
func (m *Manager[C]) RecordAnswer(card C, isCorrect bool, hintsUsed int) srs.State {
	key := card.Key()
	now := m.clock()

	previous := m.states[key]
	wasNew := previous == nil || previous.IsNew

	next := srs.Update(previous, isCorrect, hintsUsed, now)
	m.states[key] = &next

	if err := m.progress.SaveState(key, next); err != nil {
		m.logger.Warn("failed to persist scheduling state",
			zap.String("card", key), zap.Error(err))
	}
	if wasNew {
		if err := m.progress.IncrementNewCardsSeen(now); err != nil {
			m.logger.Warn("failed to bump new-card counter", zap.Error(err))
		}
	}
	return next
}

// HintForLevel returns the masked hint for the current card at the given
// level without consuming a hint. Out-of-range levels and the absence of a
// current card yield "".
func (m *Manager[C]) HintForLevel(level int) string {
	card, ok := m.Current()
	if !ok {
		m.logger.Warn("hint requested without a current card")
		return ""
	}
	if level < hint.MinLevel || level > hint.MaxLevel {
		m.logger.Warn("hint level out of range", zap.Int("level", level))
		return ""
	}
	return hint.ForLevel(m.answerFor(card), level)
}

// NextHint consumes one hint for the current card and returns its text,
// advancing the reveal level up to the full answer.
func (m *Manager[C]) NextHint() string {
	card, ok := m.Current()
	if !ok {
		m.logger.Warn("hint requested without a current card")
		return ""
	}
	level := m.hints.use()
	return hint.ForLevel(m.answerFor(card), level)
}

// HintsUsed returns how many hints the current card has consumed.
func (m *Manager[C]) HintsUsed() int {
	return m.hints.usedForCurrent
}

// ResetHintState clears the per-card hint level, e.g. when a card is
// re-presented.
func (m *Manager[C]) ResetHintState() {
	m.hints.reset()
}

// HintStats returns the session-wide hint usage counters.
func (m *Manager[C]) HintStats() HintStats {
	return m.hints.stats
}

// CategoryCounts buckets the collection into the four maturity categories.
func (m *Manager[C]) CategoryCounts() map[srs.Category]int {
	return scheduler.CategoryCounts(m.items())
}

// UpcomingReviews summarizes the pending review load for the collection.
func (m *Manager[C]) UpcomingReviews() scheduler.ReviewForecast {
	return scheduler.UpcomingReviews(m.items(), m.clock())
}

// RetentionRate is the percentage of successful reviews across the whole
// collection's history.
func (m *Manager[C]) RetentionRate() float64 {
	var history []srs.ReviewRecord
	for _, state := range m.states {
		if state != nil {
			history = append(history, state.ReviewHistory...)
		}
	}
	return srs.RetentionRate(history)
}

func (m *Manager[C]) items() []scheduler.Item {
	items := make([]scheduler.Item, 0, len(m.order))
	for _, key := range m.order {
		items = append(items, scheduler.Item{Key: key, State: m.states[key]})
	}
	return items
}
