package store

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/rvanbeek/flitskaart/internal/scheduler"
	"github.com/rvanbeek/flitskaart/internal/srs"
)

const (
	srsKeyPrefix     = "srs|"
	knownKeyPrefix   = "known|"
	newCounterKey    = "counter|new_cards"
	schedulerCfgKey  = "config|scheduler"
	counterDayLayout = "2006-01-02"
)

// SchedulerConfig is the persisted scheduling configuration.
type SchedulerConfig struct {
	DailyNewCardLimit int `json:"daily_new_card_limit"`
}

type newCardCounter struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Progress reads and writes per-card learning progress through the KV store.
// Malformed persisted values are logged and treated as absent so a corrupt
// row can never wedge a study session.
type Progress struct {
	kv     KV
	logger *zap.Logger
}

// NewProgress wraps a KV store. A nil logger falls back to a no-op logger.
func NewProgress(kv KV, logger *zap.Logger) *Progress {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Progress{kv: kv, logger: logger}
}

// LoadState returns the scheduling state persisted for a card, or nil when
// the card was never reviewed or its stored state cannot be decoded.
func (p *Progress) LoadState(cardKey string) *srs.State {
	raw, found, err := p.kv.Get(srsKeyPrefix + cardKey)
	if err != nil {
		p.logger.Warn("failed to read scheduling state, treating card as new",
			zap.String("card", cardKey), zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var state srs.State
	if err := json.Unmarshal(raw, &state); err != nil {
		p.logger.Warn("malformed scheduling state, treating card as new",
			zap.String("card", cardKey), zap.Error(err))
		return nil
	}
	return &state
}

// SaveState persists the scheduling state for a card.
func (p *Progress) SaveState(cardKey string, state srs.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return p.kv.Set(srsKeyPrefix+cardKey, raw)
}

// LoadKnown reports whether a card was marked as already known.
func (p *Progress) LoadKnown(cardKey string) bool {
	raw, found, err := p.kv.Get(knownKeyPrefix + cardKey)
	if err != nil || !found {
		if err != nil {
			p.logger.Warn("failed to read known flag", zap.String("card", cardKey), zap.Error(err))
		}
		return false
	}

	var known bool
	if err := json.Unmarshal(raw, &known); err != nil {
		p.logger.Warn("malformed known flag", zap.String("card", cardKey), zap.Error(err))
		return false
	}
	return known
}

// SaveKnown persists the known flag for a card.
func (p *Progress) SaveKnown(cardKey string, known bool) error {
	raw, err := json.Marshal(known)
	if err != nil {
		return err
	}
	return p.kv.Set(knownKeyPrefix+cardKey, raw)
}

// NewCardsSeenToday returns how many new cards were introduced on the day of
// now. A counter stored for a different day counts as zero.
func (p *Progress) NewCardsSeenToday(now time.Time) int {
	counter, ok := p.loadCounter()
	if !ok || counter.Date != now.Format(counterDayLayout) {
		return 0
	}
	return counter.Count
}

// IncrementNewCardsSeen bumps today's new-card counter, resetting it first
// when the stored day differs from now.
func (p *Progress) IncrementNewCardsSeen(now time.Time) error {
	today := now.Format(counterDayLayout)
	counter, ok := p.loadCounter()
	if !ok || counter.Date != today {
		counter = newCardCounter{Date: today}
	}
	counter.Count++

	raw, err := json.Marshal(counter)
	if err != nil {
		return err
	}
	return p.kv.Set(newCounterKey, raw)
}

func (p *Progress) loadCounter() (newCardCounter, bool) {
	raw, found, err := p.kv.Get(newCounterKey)
	if err != nil || !found {
		if err != nil {
			p.logger.Warn("failed to read new-card counter", zap.Error(err))
		}
		return newCardCounter{}, false
	}

	var counter newCardCounter
	if err := json.Unmarshal(raw, &counter); err != nil {
		p.logger.Warn("malformed new-card counter, starting over", zap.Error(err))
		return newCardCounter{}, false
	}
	return counter, true
}

// SchedulerConfig returns the persisted scheduling configuration, falling
// back to defaults when absent or malformed.
func (p *Progress) SchedulerConfig() SchedulerConfig {
	fallback := SchedulerConfig{DailyNewCardLimit: scheduler.DefaultDailyNewCardLimit}

	raw, found, err := p.kv.Get(schedulerCfgKey)
	if err != nil || !found {
		if err != nil {
			p.logger.Warn("failed to read scheduler config, using defaults", zap.Error(err))
		}
		return fallback
	}

	var cfg SchedulerConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		p.logger.Warn("malformed scheduler config, using defaults", zap.Error(err))
		return fallback
	}
	if cfg.DailyNewCardLimit <= 0 {
		cfg.DailyNewCardLimit = scheduler.DefaultDailyNewCardLimit
	}
	return cfg
}

// SaveSchedulerConfig persists the scheduling configuration.
func (p *Progress) SaveSchedulerConfig(cfg SchedulerConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return p.kv.Set(schedulerCfgKey, raw)
}

// ReviewHistories returns the persisted review history of every scheduled
// card, keyed by card key. Used by the statistics reporting.
func (p *Progress) ReviewHistories() (map[string][]srs.ReviewRecord, error) {
	keys, err := p.kv.Keys(srsKeyPrefix)
	if err != nil {
		return nil, err
	}

	histories := make(map[string][]srs.ReviewRecord, len(keys))
	for _, key := range keys {
		cardKey := key[len(srsKeyPrefix):]
		if state := p.LoadState(cardKey); state != nil {
			histories[cardKey] = state.ReviewHistory
		}
	}
	return histories, nil
}

// Reset wipes all scheduling state, known flags and daily counters. The
// scheduling configuration survives a reset.
func (p *Progress) Reset() error {
	if err := p.kv.DeletePrefix(srsKeyPrefix); err != nil {
		return err
	}
	if err := p.kv.DeletePrefix(knownKeyPrefix); err != nil {
		return err
	}
	return p.kv.Delete(newCounterKey)
}
