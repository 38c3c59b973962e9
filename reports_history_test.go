package startupmetrics

import (
	"testing"
	"time"

	"github.com/blackroad/startupmetrics/period"
	"github.com/blackroad/startupmetrics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, s *Service, startupID, metricType, month string, value float64) {
	t.Helper()
	_, err := s.RecordMetric(startupID, MetricInput{
		MetricType: metricType,
		Value:      value,
		Period:     period.MustParse(month),
	})
	require.NoError(t, err)
}

func collect(t *testing.T, s *Service, startupID, metricType string) []store.Metric {
	t.Helper()
	seq, err := s.History(startupID, metricType)
	require.NoError(t, err)
	var rows []store.Metric
	for m := range seq {
		rows = append(rows, m)
	}
	return rows
}

func TestHistoryOrderedByPeriod(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)

	// Inserted out of order on purpose.
	record(t, s, su, "burn_rate", "2026-03", 42_000)
	record(t, s, su, "burn_rate", "2025-11", 38_000)
	record(t, s, su, "burn_rate", "2026-01", 40_000)
	record(t, s, su, "nps", "2026-02", 61)

	rows := collect(t, s, su, "burn_rate")
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-11", rows[0].Period)
	assert.Equal(t, "2026-01", rows[1].Period)
	assert.Equal(t, "2026-03", rows[2].Period)
	assert.Equal(t, 38_000.0, rows[0].Value)
}

func TestHistoryRestartable(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	record(t, s, su, "nps", "2026-01", 55)
	record(t, s, su, "nps", "2026-02", 61)

	seq, err := s.History(su, "nps")
	require.NoError(t, err)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count(), "the sequence should be restartable")

	// Early break must not poison later iterations.
	for range seq {
		break
	}
	assert.Equal(t, 2, count())
}

// TestHistorySnapshot pins that a sequence is a snapshot of the records at
// call time, not a live view.
func TestHistorySnapshot(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	record(t, s, su, "nps", "2026-01", 55)

	seq, err := s.History(su, "nps")
	require.NoError(t, err)

	record(t, s, su, "nps", "2026-02", 61)

	n := 0
	for range seq {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestHistoryUnknownMetricTypeIsEmpty(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)
	record(t, s, su, "nps", "2026-01", 55)

	rows := collect(t, s, su, "no-such-metric")
	assert.Empty(t, rows)
}

func TestHistoryDefaultPeriod(t *testing.T) {
	s := newTestService(t)
	su := newTestStartup(t, s)

	m, err := s.RecordMetric(su, MetricInput{MetricType: "nps", Value: 70})
	require.NoError(t, err)
	assert.Equal(t, period.Current().String(), m.Period)
	assert.WithinDuration(t, time.Now().UTC(), m.RecordedAt, time.Minute)
}
