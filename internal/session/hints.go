package session

import "github.com/rvanbeek/flitskaart/internal/hint"

// HintStats are the session-wide hint usage counters exposed for reporting.
type HintStats struct {
	TotalHints         int
	QuestionsWithHints int
	QuestionsSeen      int
}

// hintTracker follows the progressive hint level for the current card and
// the session totals. reset is called whenever the session advances.
type hintTracker struct {
	level          int
	usedForCurrent int
	stats          HintStats
}

// use consumes one hint and returns the reveal level to show, capped at the
// full-answer level.
func (t *hintTracker) use() int {
	if t.level < hint.MaxLevel {
		t.level++
	}
	t.usedForCurrent++
	t.stats.TotalHints++
	if t.usedForCurrent == 1 {
		t.stats.QuestionsWithHints++
	}
	return t.level
}

func (t *hintTracker) reset() {
	t.level = 0
	t.usedForCurrent = 0
}
