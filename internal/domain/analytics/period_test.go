package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30, ParsePeriodDays(""))
	assert.Equal(t, 30, ParsePeriodDays("abc"))
	assert.Equal(t, 30, ParsePeriodDays("7.5"))
	assert.Equal(t, 1, ParsePeriodDays("0"))
	assert.Equal(t, 1, ParsePeriodDays("-5"))
	assert.Equal(t, 7, ParsePeriodDays("7"))
	assert.Equal(t, 365, ParsePeriodDays("365"))
}

func TestParseTopLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, ParseTopLimit(""))
	assert.Equal(t, 5, ParseTopLimit("abc"))
	assert.Equal(t, 5, ParseTopLimit("0"))
	assert.Equal(t, 1, ParseTopLimit("-3"))
	assert.Equal(t, 7, ParseTopLimit("7"))
	assert.Equal(t, 50, ParseTopLimit("200"))
}

func TestBuckets_Daily(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 15, 42, 0, 0, time.UTC)

	buckets := Buckets(now, 7)
	require.Len(t, buckets, 7)

	assert.Equal(t, "2026-03-04", buckets[0].Label)
	assert.Equal(t, "2026-03-10", buckets[6].Label)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), buckets[0].Start)
	for _, b := range buckets {
		assert.Equal(t, 1, b.Days)
		assert.Equal(t, 23, b.End.Hour())
		assert.Equal(t, 59, b.End.Minute())
	}
}

func TestBuckets_Weekly(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	buckets := Buckets(now, 30)
	require.Len(t, buckets, 5)

	assert.Equal(t, "Week of 2026-02-09", buckets[0].Label)
	totalDays := 0
	for _, b := range buckets {
		totalDays += b.Days
	}
	assert.Equal(t, 30, totalDays)

	// Last window is clipped to the period end.
	last := buckets[len(buckets)-1]
	assert.Equal(t, 2, last.Days)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), last.Start)
}

func TestBuckets_Monthly(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	buckets := Buckets(now, 365)
	require.Len(t, buckets, 13)

	first := buckets[0]
	assert.Equal(t, "Mar 2025", first.Label)
	// First month is clipped to the period start.
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, 21, first.Days)

	last := buckets[len(buckets)-1]
	assert.Equal(t, "Mar 2026", last.Label)
	assert.Equal(t, 10, last.Days)

	assert.Equal(t, "Apr 2025", buckets[1].Label)
	assert.Equal(t, 30, buckets[1].Days)
}

func TestKPIWindowsFor(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	w := KPIWindowsFor(now, 30)

	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), w.CurrentStart)
	assert.Equal(t, time.Date(2026, 2, 8, 23, 59, 59, int(999*time.Millisecond), time.UTC), w.PrevEnd)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), w.PrevStart)

	// Previous window has the same day count as the current one.
	assert.Equal(t, daySpan(w.CurrentStart, w.CurrentEnd), daySpan(w.PrevStart, w.PrevEnd))

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), w.TodayStart)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), w.YesterdayStart)
}

func TestPercentChange(t *testing.T) {
	t.Parallel()

	change, changeType := PercentChange(5, 0)
	assert.Equal(t, 0.0, change)
	assert.Equal(t, ChangeIncrease, changeType)

	change, changeType = PercentChange(0, 0)
	assert.Equal(t, 0.0, change)
	assert.Equal(t, ChangeIncrease, changeType)

	change, changeType = PercentChange(25, 50)
	assert.Equal(t, -50.0, change)
	assert.Equal(t, ChangeDecrease, changeType)

	change, changeType = PercentChange(50, 25)
	assert.Equal(t, 100.0, change)
	assert.Equal(t, ChangeIncrease, changeType)

	change, changeType = PercentChange(10, 3)
	assert.Equal(t, 233.3, change)
	assert.Equal(t, ChangeIncrease, changeType)
}

func TestIsLate(t *testing.T) {
	t.Parallel()

	assert.False(t, IsLate(time.Date(2026, 3, 10, 9, 30, 59, 0, time.UTC)))
	assert.True(t, IsLate(time.Date(2026, 3, 10, 9, 31, 0, 0, time.UTC)))
	assert.True(t, IsLate(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)))
	assert.False(t, IsLate(time.Date(2026, 3, 10, 8, 59, 0, 0, time.UTC)))

	// The cutoff applies to the UTC clock, not the local offset.
	jakarta := time.FixedZone("WIB", 7*3600)
	assert.True(t, IsLate(time.Date(2026, 3, 10, 16, 31, 0, 0, jakarta)))
	assert.False(t, IsLate(time.Date(2026, 3, 10, 16, 29, 0, 0, jakarta)))
}

func TestRound1(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.3, Round1(1.25))
	assert.Equal(t, -1.3, Round1(-1.25))
	assert.Equal(t, 84.0, Round1(84.0))
}
