package analytics

import (
	"math"
	"strconv"
	"time"
)

// Bucket is a labeled sub-interval of a reporting period. Trend aggregation
// groups raw attendance events per bucket and normalizes by Days.
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string
	Days  int
}

const (
	// DefaultPeriodDays is used when the period query param is absent or unparsable.
	DefaultPeriodDays = 30
	// DefaultTopLimit is the default number of top performers returned.
	DefaultTopLimit = 5
	// MaxTopLimit caps the top-performer limit.
	MaxTopLimit = 50
)

// ParsePeriodDays parses a trailing-period query parameter. Malformed or
// missing values fall back to the default rather than being rejected.
func ParsePeriodDays(raw string) int {
	if raw == "" {
		return DefaultPeriodDays
	}
	d, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPeriodDays
	}
	if d < 1 {
		return 1
	}
	return d
}

// ParseTopLimit parses the top-performer limit, clamped to [1, MaxTopLimit].
func ParseTopLimit(raw string) int {
	if raw == "" {
		return DefaultTopLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return DefaultTopLimit
	}
	if n < 1 {
		return 1
	}
	if n > MaxTopLimit {
		return MaxTopLimit
	}
	return n
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

// PeriodRange returns the inclusive [start, end] range covering the trailing
// periodDays days ending at now, normalized to UTC day boundaries.
func PeriodRange(now time.Time, periodDays int) (time.Time, time.Time) {
	start := startOfDay(now.UTC().AddDate(0, 0, -(periodDays - 1)))
	end := endOfDay(now)
	return start, end
}

// daySpan counts calendar days between two instants, both inclusive.
func daySpan(start, end time.Time) int {
	return int(startOfDay(end).Sub(startOfDay(start)).Hours()/24) + 1
}

// Buckets partitions the trailing period into labeled buckets: one per day for
// periods up to a week, one per 7-day window under a year, one per calendar
// month otherwise. Window and month buckets are clipped to the period
// boundaries and carry the clipped day count.
func Buckets(now time.Time, periodDays int) []Bucket {
	switch {
	case periodDays <= 7:
		return dailyBuckets(now, periodDays)
	case periodDays >= 365:
		return monthlyBuckets(now, periodDays)
	default:
		return weeklyBuckets(now, periodDays)
	}
}

func dailyBuckets(now time.Time, periodDays int) []Bucket {
	start, end := PeriodRange(now, periodDays)

	var buckets []Bucket
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		buckets = append(buckets, Bucket{
			Start: cur,
			End:   endOfDay(cur),
			Label: cur.Format("2006-01-02"),
			Days:  1,
		})
	}
	return buckets
}

func weeklyBuckets(now time.Time, periodDays int) []Bucket {
	start, end := PeriodRange(now, periodDays)

	var buckets []Bucket
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 7) {
		weekEnd := endOfDay(cur.AddDate(0, 0, 6))
		if weekEnd.After(end) {
			weekEnd = end
		}
		buckets = append(buckets, Bucket{
			Start: cur,
			End:   weekEnd,
			Label: "Week of " + cur.Format("2006-01-02"),
			Days:  daySpan(cur, weekEnd),
		})
	}
	return buckets
}

func monthlyBuckets(now time.Time, periodDays int) []Bucket {
	start, end := PeriodRange(now, periodDays)

	var buckets []Bucket
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		monthEnd := cur.AddDate(0, 1, 0).AddDate(0, 0, -1)
		if monthEnd.After(end) {
			monthEnd = end
		}
		effStart := cur
		if effStart.Before(start) {
			effStart = start
		}
		buckets = append(buckets, Bucket{
			Start: effStart,
			End:   endOfDay(monthEnd),
			Label: cur.Format("Jan 2006"),
			Days:  daySpan(effStart, monthEnd),
		})
		cur = cur.AddDate(0, 1, 0)
	}
	return buckets
}

// KPIWindows holds the comparison boundaries for the dashboard KPI metrics:
// the current trailing window, the immediately preceding window of equal
// length, and the today/yesterday day pair used by the presence metric.
type KPIWindows struct {
	CurrentStart   time.Time
	CurrentEnd     time.Time
	PrevStart      time.Time
	PrevEnd        time.Time
	TodayStart     time.Time
	TodayEnd       time.Time
	YesterdayStart time.Time
	YesterdayEnd   time.Time
}

// KPIWindowsFor computes the comparison boundaries for a trailing period
// ending at now.
func KPIWindowsFor(now time.Time, periodDays int) KPIWindows {
	currentStart, currentEnd := PeriodRange(now, periodDays)

	prevEnd := endOfDay(currentStart.AddDate(0, 0, -1))
	prevStart := startOfDay(prevEnd.AddDate(0, 0, -(periodDays - 1)))

	todayStart := startOfDay(now)
	todayEnd := endOfDay(now)

	return KPIWindows{
		CurrentStart:   currentStart,
		CurrentEnd:     currentEnd,
		PrevStart:      prevStart,
		PrevEnd:        prevEnd,
		TodayStart:     todayStart,
		TodayEnd:       todayEnd,
		YesterdayStart: todayStart.AddDate(0, 0, -1),
		YesterdayEnd:   todayEnd.AddDate(0, 0, -1),
	}
}

// PercentChange derives the signed percent change between two values. A zero
// previous value yields a zero percent classified by the sign of current.
// The direction is taken from the raw difference, not the rounded percentage.
func PercentChange(current, previous float64) (float64, ChangeType) {
	if previous == 0 {
		if current >= 0 {
			return 0, ChangeIncrease
		}
		return 0, ChangeDecrease
	}
	diff := (current - previous) / previous * 100
	if diff >= 0 {
		return Round1(diff), ChangeIncrease
	}
	return Round1(diff), ChangeDecrease
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// IsLate reports whether a clock-in is after the 09:30 UTC cutoff.
func IsLate(clockIn time.Time) bool {
	t := clockIn.UTC()
	return t.Hour() > 9 || (t.Hour() == 9 && t.Minute() > 30)
}

// DayKey buckets an instant to its UTC calendar date.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
