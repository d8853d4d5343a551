package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvanbeek/flitskaart/internal/srs"
)

func record(year int, month time.Month, day, quality int) srs.ReviewRecord {
	return srs.ReviewRecord{
		Date:    time.Date(year, month, day, 12, 0, 0, 0, time.UTC),
		Quality: quality,
	}
}

func TestCalculate(t *testing.T) {
	histories := map[string][]srs.ReviewRecord{
		// Learned in February, reviewed again in March.
		"word|huis|house": {
			record(2026, time.February, 3, 5),
			record(2026, time.February, 4, 4),
			record(2026, time.March, 1, 4),
		},
		// Failed twice in February before the first success in March.
		"word|fiets|bicycle": {
			record(2026, time.February, 10, 1),
			record(2026, time.February, 12, 2),
			record(2026, time.March, 2, 4),
		},
	}

	got := Calculate(histories, 0, 0)

	require.Len(t, got.Periods, 2)
	assert.Equal(t, "2026-03", got.Periods[0].Period, "newest period comes first")

	march := got.Periods[0]
	assert.Equal(t, 1, march.NewCards, "fiets first succeeded in March")
	assert.Equal(t, 2, march.Reviews)
	assert.Equal(t, 2, march.Successes)
	assert.Equal(t, 0, march.Failures)
	assert.InDelta(t, 100.0, march.RetentionRate, 0.001)

	february := got.Periods[1]
	assert.Equal(t, 1, february.NewCards, "huis first succeeded in February")
	assert.Equal(t, 4, february.Reviews)
	assert.Equal(t, 2, february.Successes)
	assert.Equal(t, 2, february.Failures)
	assert.InDelta(t, 50.0, february.RetentionRate, 0.001)

	assert.Equal(t, 2, got.Aggregate.NewCards)
	assert.Equal(t, 6, got.Aggregate.Reviews)
	assert.Equal(t, 4, got.Aggregate.Successes)
	assert.InDelta(t, 100.0*4/6, got.Aggregate.RetentionRate, 0.001)
}

func TestCalculateWithFilters(t *testing.T) {
	histories := map[string][]srs.ReviewRecord{
		"word|huis|house": {
			record(2025, time.December, 20, 5),
			record(2026, time.January, 5, 4),
			record(2026, time.February, 1, 2),
		},
	}

	tests := []struct {
		name        string
		year, month int
		wantPeriods []string
		wantNew     int
	}{
		{name: "no filter", year: 0, month: 0, wantPeriods: []string{"2026-02", "2026-01", "2025-12"}, wantNew: 1},
		{name: "year filter", year: 2026, month: 0, wantPeriods: []string{"2026-02", "2026-01"}, wantNew: 0},
		{name: "month filter", year: 2026, month: 1, wantPeriods: []string{"2026-01"}, wantNew: 0},
		{name: "empty result", year: 2024, month: 0, wantPeriods: nil, wantNew: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(histories, tt.year, tt.month)
			periods := make([]string, 0, len(got.Periods))
			for _, period := range got.Periods {
				periods = append(periods, period.Period)
			}
			if tt.wantPeriods == nil {
				assert.Empty(t, periods)
			} else {
				assert.Equal(t, tt.wantPeriods, periods)
			}
			// The first success stays attributed to its real period even
			// when the filter hides that period.
			assert.Equal(t, tt.wantNew, got.Aggregate.NewCards)
		})
	}
}

func TestCalculateEmptyHistories(t *testing.T) {
	got := Calculate(nil, 0, 0)
	assert.Empty(t, got.Periods)
	assert.Equal(t, 0, got.Aggregate.Reviews)
	assert.InDelta(t, 100.0, got.Aggregate.RetentionRate, 0.001)
}

func TestCalculateSkipsZeroDates(t *testing.T) {
	histories := map[string][]srs.ReviewRecord{
		"word|huis|house": {
			{Quality: 5},
			record(2026, time.March, 1, 5),
		},
	}

	got := Calculate(histories, 0, 0)
	assert.Equal(t, 1, got.Aggregate.Reviews)
	assert.Equal(t, 1, got.Aggregate.NewCards)
}
