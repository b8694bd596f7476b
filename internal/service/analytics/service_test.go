package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnalyticsRepo serves canned rows, filtering by the requested range the
// way the real queries do.
type fakeAnalyticsRepo struct {
	employees []analytics.EmployeeRef
	events    []analytics.AttendanceEvent
	reviews   []analytics.ReviewEvent
	leave     []fakeLeaveRequest
}

type fakeLeaveRequest struct {
	createdAt time.Time
	status    string
}

func (f *fakeAnalyticsRepo) ListEmployees(ctx context.Context) ([]analytics.EmployeeRef, error) {
	return f.employees, nil
}

func (f *fakeAnalyticsRepo) ListAttendanceEvents(ctx context.Context, start, end time.Time) ([]analytics.AttendanceEvent, error) {
	var out []analytics.AttendanceEvent
	for _, ev := range f.events {
		if !ev.ClockIn.Before(start) && !ev.ClockIn.After(end) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) ListReviewEvents(ctx context.Context, start, end time.Time) ([]analytics.ReviewEvent, error) {
	var out []analytics.ReviewEvent
	for _, rv := range f.reviews {
		if !rv.ReviewDate.Before(start) && !rv.ReviewDate.After(end) {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) CountEmployeesJoinedBy(ctx context.Context, cutoff time.Time) (int64, error) {
	return int64(len(f.employees)), nil
}

func (f *fakeAnalyticsRepo) CountAttendanceEvents(ctx context.Context, start, end time.Time) (int64, error) {
	events, _ := f.ListAttendanceEvents(ctx, start, end)
	return int64(len(events)), nil
}

func (f *fakeAnalyticsRepo) CountLeaveRequests(ctx context.Context, start, end time.Time, status string) (int64, error) {
	var n int64
	for _, lr := range f.leave {
		if lr.createdAt.Before(start) || lr.createdAt.After(end) {
			continue
		}
		if status != "" && lr.status != status {
			continue
		}
		n++
	}
	return n, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func TestAttendanceTrends_SkipsEmptyBuckets(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		employees: []analytics.EmployeeRef{
			{ID: "e1", Name: "Ana", Department: "Engineering"},
			{ID: "e2", Name: "Ben", Department: "Engineering"},
		},
		events: []analytics.AttendanceEvent{
			// Both employees on time on March 9.
			{EmployeeID: "e1", ClockIn: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)},
			{EmployeeID: "e2", ClockIn: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)},
			// One late clock-in on March 10; a second scan the same day
			// must not double count.
			{EmployeeID: "e1", ClockIn: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)},
			{EmployeeID: "e1", ClockIn: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	points, err := svc.AttendanceTrends(context.Background(), 7)
	require.NoError(t, err)

	// Seven daily buckets, five of them empty.
	require.Len(t, points, 2)

	assert.Equal(t, "2026-03-09", points[0].Label)
	assert.Equal(t, 100.0, points[0].Present)
	assert.Equal(t, 0.0, points[0].Absent)
	assert.Equal(t, 0.0, points[0].Late)

	assert.Equal(t, "2026-03-10", points[1].Label)
	assert.Equal(t, 0.0, points[1].Present)
	assert.Equal(t, 50.0, points[1].Absent)
	assert.Equal(t, 50.0, points[1].Late)
}

func TestAttendanceTrends_NoEmployeesUsesFloorDenominator(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		events: []analytics.AttendanceEvent{
			{EmployeeID: "ghost", ClockIn: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	points, err := svc.AttendanceTrends(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 100.0, points[0].Present)
}

func TestDepartmentRollup_SortsByHeadcount(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		employees: []analytics.EmployeeRef{
			{ID: "e1", Name: "Ana", Department: "Engineering"},
			{ID: "e2", Name: "Ben", Department: "Engineering"},
			{ID: "e3", Name: "Cam", Department: "Sales"},
		},
		reviews: []analytics.ReviewEvent{
			{EmployeeID: "e3", OverallRating: 4, ReviewDate: testNow.AddDate(0, 0, -1)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	rows, err := svc.DepartmentRollup(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Engineering", rows[0].Name)
	assert.Equal(t, 2, rows[0].Employees)
	assert.Equal(t, 0.0, rows[0].AvgAttendance)
	assert.Equal(t, 0.0, rows[0].AvgPerformance)

	assert.Equal(t, "Sales", rows[1].Name)
	assert.Equal(t, 80.0, rows[1].AvgPerformance)
}

func TestKPIMetrics_LeaveComparesPendingAgainstAllPrevious(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		employees: []analytics.EmployeeRef{
			{ID: "e1", Name: "Ana", Department: "Engineering"},
		},
		leave: []fakeLeaveRequest{
			// Current window: one pending, one approved.
			{createdAt: testNow.AddDate(0, 0, -2), status: "pending"},
			{createdAt: testNow.AddDate(0, 0, -3), status: "approved"},
			// Previous window: two requests, neither pending.
			{createdAt: testNow.AddDate(0, 0, -35), status: "approved"},
			{createdAt: testNow.AddDate(0, 0, -40), status: "rejected"},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	metrics, err := svc.KPIMetrics(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, metrics, 4)

	leaveMetric := metrics[3]
	assert.Equal(t, "Pending Leave Requests", leaveMetric.Title)
	assert.Equal(t, int64(1), leaveMetric.Value)
	// 1 pending now vs 2 of any status before.
	assert.Equal(t, -50.0, leaveMetric.Change)
	assert.Equal(t, analytics.ChangeDecrease, leaveMetric.ChangeType)
}

func TestKPIMetrics_AveragePerformanceFormatsWithoutTrailingZero(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		employees: []analytics.EmployeeRef{
			{ID: "e1", Name: "Ana", Department: "Engineering"},
		},
		reviews: []analytics.ReviewEvent{
			{EmployeeID: "e1", OverallRating: 4, ReviewDate: testNow.AddDate(0, 0, -1)},
			{EmployeeID: "e1", OverallRating: 4.4, ReviewDate: testNow.AddDate(0, 0, -2)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	metrics, err := svc.KPIMetrics(context.Background(), 30)
	require.NoError(t, err)

	perf := metrics[2]
	assert.Equal(t, "Average Performance", perf.Title)
	// Mean 4.2 of 5 is 84 percent; the card shows "84%", never "84.0%".
	assert.Equal(t, "84%", perf.Value)
	// Nothing in the previous window, so the change floors at zero increase.
	assert.Equal(t, 0.0, perf.Change)
	assert.Equal(t, analytics.ChangeIncrease, perf.ChangeType)
}

func TestPerformanceDistribution_AllBandsAlwaysPresent(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		reviews: []analytics.ReviewEvent{
			{EmployeeID: "e1", OverallRating: 5, ReviewDate: testNow.AddDate(0, 0, -1)},
			{EmployeeID: "e2", OverallRating: 5, ReviewDate: testNow.AddDate(0, 0, -2)},
			{EmployeeID: "e3", OverallRating: 4, ReviewDate: testNow.AddDate(0, 0, -3)},
			{EmployeeID: "e4", OverallRating: 1, ReviewDate: testNow.AddDate(0, 0, -4)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	rows, err := svc.PerformanceDistribution(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "Excellent (90-100)", rows[0].Rating)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, 50.0, rows[0].Percentage)

	assert.Equal(t, "Good (80-89)", rows[1].Rating)
	assert.Equal(t, 1, rows[1].Count)

	assert.Equal(t, "Satisfactory (70-79)", rows[2].Rating)
	assert.Equal(t, 0, rows[2].Count)
	assert.Equal(t, 0.0, rows[2].Percentage)

	assert.Equal(t, "Poor (<60)", rows[4].Rating)
	assert.Equal(t, 1, rows[4].Count)
}

func TestPerformanceDistribution_EmptyInput(t *testing.T) {
	t.Parallel()
	svc := NewAnalyticsServiceAt(&fakeAnalyticsRepo{}, fixedNow)

	rows, err := svc.PerformanceDistribution(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Equal(t, 0, row.Count)
		assert.Equal(t, 0.0, row.Percentage)
	}
}

func TestTopPerformers_RanksAndClips(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		employees: []analytics.EmployeeRef{
			{ID: "e1", Name: "Ana", Department: "Engineering"},
			{ID: "e2", Name: "Ben", Department: "Sales"},
			{ID: "e3", Name: "", Department: "Sales"},
		},
		reviews: []analytics.ReviewEvent{
			{EmployeeID: "e1", OverallRating: 3, ReviewDate: testNow.AddDate(0, 0, -1)},
			{EmployeeID: "e2", OverallRating: 5, ReviewDate: testNow.AddDate(0, 0, -2)},
			{EmployeeID: "e1", OverallRating: 5, ReviewDate: testNow.AddDate(0, 0, -3)},
			// Nameless roster entry is dropped from the ranking.
			{EmployeeID: "e3", OverallRating: 5, ReviewDate: testNow.AddDate(0, 0, -4)},
			// Unknown employee id is dropped too.
			{EmployeeID: "ghost", OverallRating: 5, ReviewDate: testNow.AddDate(0, 0, -5)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	rows, err := svc.TopPerformers(context.Background(), 30, 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ben", rows[0].Name)
	assert.Equal(t, 5.0, rows[0].Score)
	assert.Equal(t, "Ana", rows[1].Name)
	assert.Equal(t, 4.0, rows[1].Score)

	clipped, err := svc.TopPerformers(context.Background(), 30, 1)
	require.NoError(t, err)
	require.Len(t, clipped, 1)
	assert.Equal(t, "Ben", clipped[0].Name)
}

func TestTopPerformers_NoReviews(t *testing.T) {
	t.Parallel()
	svc := NewAnalyticsServiceAt(&fakeAnalyticsRepo{}, fixedNow)

	rows, err := svc.TopPerformers(context.Background(), 30, 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestOverview_CombinesAllSections(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		employees: []analytics.EmployeeRef{
			{ID: "e1", Name: "Ana", Department: "Engineering"},
		},
		events: []analytics.AttendanceEvent{
			{EmployeeID: "e1", ClockIn: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)},
		},
		reviews: []analytics.ReviewEvent{
			{EmployeeID: "e1", OverallRating: 4, ReviewDate: testNow.AddDate(0, 0, -1)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	overview, err := svc.Overview(context.Background(), 30, 5)
	require.NoError(t, err)
	require.NotNil(t, overview)

	assert.Len(t, overview.Metrics, 4)
	assert.NotEmpty(t, overview.AttendanceTrends)
	assert.Len(t, overview.Departments, 1)
	assert.Len(t, overview.Distribution, 5)
	assert.Len(t, overview.TopPerformers, 1)
}

func TestAggregationIsDeterministic(t *testing.T) {
	t.Parallel()
	repo := &fakeAnalyticsRepo{
		employees: []analytics.EmployeeRef{
			{ID: "e1", Name: "Ana", Department: "Engineering"},
			{ID: "e2", Name: "Ben", Department: "Sales"},
			{ID: "e3", Name: "Cam", Department: "Sales"},
		},
		reviews: []analytics.ReviewEvent{
			{EmployeeID: "e1", OverallRating: 4, ReviewDate: testNow.AddDate(0, 0, -1)},
			{EmployeeID: "e2", OverallRating: 4, ReviewDate: testNow.AddDate(0, 0, -2)},
			{EmployeeID: "e3", OverallRating: 4, ReviewDate: testNow.AddDate(0, 0, -3)},
		},
	}
	svc := NewAnalyticsServiceAt(repo, fixedNow)

	first, err := svc.TopPerformers(context.Background(), 30, 5)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := svc.TopPerformers(context.Background(), 30, 5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	// All scores tie; encounter order of the reviews decides the ranking.
	assert.Equal(t, "Ana", first[0].Name)
	assert.Equal(t, "Ben", first[1].Name)
	assert.Equal(t, "Cam", first[2].Name)
}
