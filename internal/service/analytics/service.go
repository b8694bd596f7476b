package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/analytics"
	"golang.org/x/sync/errgroup"
)

type AnalyticsServiceImpl struct {
	repo analytics.AnalyticsRepository
	now  func() time.Time
}

func NewAnalyticsService(repo analytics.AnalyticsRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// NewAnalyticsServiceAt pins the aggregation clock. Used by tests.
func NewAnalyticsServiceAt(repo analytics.AnalyticsRepository, now func() time.Time) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{repo: repo, now: now}
}

// AttendanceTrends aggregates presence percentages per bucket. A bucket with
// no attendance events is skipped entirely so the chart renders no empty
// segment for it.
func (s *AnalyticsServiceImpl) AttendanceTrends(ctx context.Context, periodDays int) ([]analytics.TrendPoint, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("attendance trends: %w", err)
	}
	employeeCount := len(employees)
	if employeeCount < 1 {
		employeeCount = 1
	}

	buckets := analytics.Buckets(s.now(), periodDays)
	points := make([]analytics.TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		events, err := s.repo.ListAttendanceEvents(ctx, b.Start, b.End)
		if err != nil {
			return nil, fmt.Errorf("attendance trends: %w", err)
		}
		if len(events) == 0 {
			continue
		}

		// Distinct employees per calendar day; two clock-ins by the same
		// employee on one day count as one present day.
		presentByDay := map[string]map[string]struct{}{}
		lateByDay := map[string]map[string]struct{}{}
		for _, ev := range events {
			day := analytics.DayKey(ev.ClockIn)
			if presentByDay[day] == nil {
				presentByDay[day] = map[string]struct{}{}
			}
			presentByDay[day][ev.EmployeeID] = struct{}{}
			if analytics.IsLate(ev.ClockIn) {
				if lateByDay[day] == nil {
					lateByDay[day] = map[string]struct{}{}
				}
				lateByDay[day][ev.EmployeeID] = struct{}{}
			}
		}

		presentDays := 0
		for _, set := range presentByDay {
			presentDays += len(set)
		}
		lateDays := 0
		for _, set := range lateByDay {
			lateDays += len(set)
		}

		denom := float64(employeeCount * b.Days)
		presentPctTotal := clampPct(float64(presentDays) / denom * 100)
		latePct := clampPct(float64(lateDays) / denom * 100)
		presentOnTimePct := math.Max(0, presentPctTotal-latePct)
		absentPct := math.Max(0, 100-presentPctTotal)

		points = append(points, analytics.TrendPoint{
			Label:   b.Label,
			Present: analytics.Round1(presentOnTimePct),
			Absent:  analytics.Round1(absentPct),
			Late:    analytics.Round1(latePct),
		})
	}
	return points, nil
}

// DepartmentRollup summarizes attendance and review averages per department
// label. The empty label is a valid group for employees with no department
// set. Rows come back sorted by employee count, largest first.
func (s *AnalyticsServiceImpl) DepartmentRollup(ctx context.Context, periodDays int) ([]analytics.DepartmentRow, error) {
	start, end := analytics.PeriodRange(s.now(), periodDays)

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("department rollup: %w", err)
	}

	deptOrder := []string{}
	deptCounts := map[string]int{}
	deptByEmployee := map[string]string{}
	for _, e := range employees {
		dept := e.Department
		if _, seen := deptCounts[dept]; !seen {
			deptOrder = append(deptOrder, dept)
		}
		deptCounts[dept]++
		deptByEmployee[e.ID] = dept
	}

	events, err := s.repo.ListAttendanceEvents(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("department rollup: %w", err)
	}
	attByDept := map[string]int{}
	for _, ev := range events {
		attByDept[deptByEmployee[ev.EmployeeID]]++
	}

	reviews, err := s.repo.ListReviewEvents(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("department rollup: %w", err)
	}
	ratingSum := map[string]float64{}
	ratingCount := map[string]int{}
	for _, rv := range reviews {
		dept := deptByEmployee[rv.EmployeeID]
		ratingSum[dept] += rv.OverallRating
		ratingCount[dept]++
	}

	rows := make([]analytics.DepartmentRow, 0, len(deptOrder))
	for _, dept := range deptOrder {
		count := deptCounts[dept]
		if count == 0 {
			continue
		}
		attPct := clampPct(float64(attByDept[dept]) / float64(count*periodDays) * 100)
		avgRating := 0.0
		if ratingCount[dept] > 0 {
			avgRating = ratingSum[dept] / float64(ratingCount[dept])
		}
		perfPct := clampPct(avgRating / 5 * 100)
		rows = append(rows, analytics.DepartmentRow{
			Name:           dept,
			Employees:      count,
			AvgAttendance:  analytics.Round1(attPct),
			AvgPerformance: analytics.Round1(perfPct),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Employees > rows[j].Employees
	})
	return rows, nil
}

// KPIMetrics compares each headline metric against the immediately preceding
// window of equal length. The leave metric compares pending requests in the
// current window against requests of any status in the previous one; that is
// the dashboard's established behavior and changing it would silently shift
// the reported change.
func (s *AnalyticsServiceImpl) KPIMetrics(ctx context.Context, periodDays int) ([]analytics.Metric, error) {
	w := analytics.KPIWindowsFor(s.now(), periodDays)

	currentEmp, err := s.repo.CountEmployeesJoinedBy(ctx, w.CurrentEnd)
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	prevEmp, err := s.repo.CountEmployeesJoinedBy(ctx, w.PrevEnd)
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	empChange, empType := analytics.PercentChange(float64(currentEmp), float64(prevEmp))

	todayPresent, err := s.repo.CountAttendanceEvents(ctx, w.TodayStart, w.TodayEnd)
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	yesterdayPresent, err := s.repo.CountAttendanceEvents(ctx, w.YesterdayStart, w.YesterdayEnd)
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	presentChange, presentType := analytics.PercentChange(float64(todayPresent), float64(yesterdayPresent))

	curReviews, err := s.repo.ListReviewEvents(ctx, w.CurrentStart, w.CurrentEnd)
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	prevReviews, err := s.repo.ListReviewEvents(ctx, w.PrevStart, w.PrevEnd)
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	curAvg := meanRating(curReviews)
	prevAvg := meanRating(prevReviews)
	// Percent change is computed on the raw means, not the displayed percentage.
	perfChange, perfType := analytics.PercentChange(curAvg, prevAvg)
	perfPercent := analytics.Round1(curAvg / 5 * 100)

	pendingCur, err := s.repo.CountLeaveRequests(ctx, w.CurrentStart, w.CurrentEnd, "pending")
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	allPrev, err := s.repo.CountLeaveRequests(ctx, w.PrevStart, w.PrevEnd, "")
	if err != nil {
		return nil, fmt.Errorf("kpi metrics: %w", err)
	}
	leaveChange, leaveType := analytics.PercentChange(float64(pendingCur), float64(allPrev))

	return []analytics.Metric{
		{
			Title:      "Total Employees",
			Value:      currentEmp,
			Change:     empChange,
			ChangeType: empType,
			Icon:       "users",
		},
		{
			Title:      "Present Today",
			Value:      todayPresent,
			Change:     presentChange,
			ChangeType: presentType,
			Icon:       "user-check",
		},
		{
			Title:      "Average Performance",
			Value:      formatPercent(perfPercent),
			Change:     perfChange,
			ChangeType: perfType,
			Icon:       "trending-up",
		},
		{
			Title:      "Pending Leave Requests",
			Value:      pendingCur,
			Change:     leaveChange,
			ChangeType: leaveType,
			Icon:       "file-text",
		},
	}, nil
}

// distribution bands over ratings scaled to 0-100. Order matters: a value is
// assigned to the first band it fits, and anything outside the partition
// falls back to Poor.
var distributionBands = []struct {
	key string
	min float64
	max float64
}{
	{"Excellent (90-100)", 90, 100},
	{"Good (80-89)", 80, 89.999},
	{"Satisfactory (70-79)", 70, 79.999},
	{"Needs Improvement (60-69)", 60, 69.999},
	{"Poor (<60)", math.Inf(-1), 59.999},
}

// PerformanceDistribution maps review ratings onto the five fixed percentage
// bands. All five bands are always present in the output.
func (s *AnalyticsServiceImpl) PerformanceDistribution(ctx context.Context, periodDays int) ([]analytics.DistributionRow, error) {
	start, end := analytics.PeriodRange(s.now(), periodDays)

	reviews, err := s.repo.ListReviewEvents(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("performance distribution: %w", err)
	}

	counts := map[string]int{}
	for _, rv := range reviews {
		pct := rv.OverallRating / 5 * 100
		key := distributionBands[len(distributionBands)-1].key
		for _, band := range distributionBands {
			if pct >= band.min && pct <= band.max {
				key = band.key
				break
			}
		}
		counts[key]++
	}

	total := len(reviews)
	if total < 1 {
		total = 1
	}
	rows := make([]analytics.DistributionRow, 0, len(distributionBands))
	for _, band := range distributionBands {
		count := counts[band.key]
		rows = append(rows, analytics.DistributionRow{
			Rating:     band.key,
			Count:      count,
			Percentage: analytics.Round1(float64(count) / float64(total) * 100),
		})
	}
	return rows, nil
}

// TopPerformers ranks employees by average review score within the period.
// Employees whose roster name cannot be resolved are dropped silently. Ties
// keep their encounter order.
func (s *AnalyticsServiceImpl) TopPerformers(ctx context.Context, periodDays, limit int) ([]analytics.TopPerformerRow, error) {
	start, end := analytics.PeriodRange(s.now(), periodDays)

	reviews, err := s.repo.ListReviewEvents(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("top performers: %w", err)
	}
	if len(reviews) == 0 {
		return []analytics.TopPerformerRow{}, nil
	}

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("top performers: %w", err)
	}
	roster := map[string]analytics.EmployeeRef{}
	for _, e := range employees {
		roster[e.ID] = e
	}

	order := []string{}
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, rv := range reviews {
		if _, seen := counts[rv.EmployeeID]; !seen {
			order = append(order, rv.EmployeeID)
		}
		sums[rv.EmployeeID] += rv.OverallRating
		counts[rv.EmployeeID]++
	}

	rows := make([]analytics.TopPerformerRow, 0, len(order))
	for _, id := range order {
		ref, ok := roster[id]
		if !ok || ref.Name == "" {
			continue
		}
		score := analytics.Round1(sums[id] / float64(counts[id]))
		rows = append(rows, analytics.TopPerformerRow{
			ID:         id,
			Name:       ref.Name,
			Department: ref.Department,
			Score:      score,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})
	if limit < 1 {
		limit = 1
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// Overview runs the five aggregators concurrently and combines their results,
// the same fan-out the main dashboard endpoint uses. Each aggregator remains
// internally sequential.
func (s *AnalyticsServiceImpl) Overview(ctx context.Context, periodDays, limit int) (*analytics.Overview, error) {
	var overview analytics.Overview

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		metrics, err := s.KPIMetrics(gCtx, periodDays)
		if err != nil {
			return err
		}
		overview.Metrics = metrics
		return nil
	})
	g.Go(func() error {
		trends, err := s.AttendanceTrends(gCtx, periodDays)
		if err != nil {
			return err
		}
		overview.AttendanceTrends = trends
		return nil
	})
	g.Go(func() error {
		departments, err := s.DepartmentRollup(gCtx, periodDays)
		if err != nil {
			return err
		}
		overview.Departments = departments
		return nil
	})
	g.Go(func() error {
		distribution, err := s.PerformanceDistribution(gCtx, periodDays)
		if err != nil {
			return err
		}
		overview.Distribution = distribution
		return nil
	})
	g.Go(func() error {
		top, err := s.TopPerformers(gCtx, periodDays, limit)
		if err != nil {
			return err
		}
		overview.TopPerformers = top
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

func clampPct(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func meanRating(reviews []analytics.ReviewEvent) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, rv := range reviews {
		sum += rv.OverallRating
	}
	return sum / float64(len(reviews))
}

// formatPercent renders a KPI percentage without a trailing ".0", matching
// the dashboard cards ("84%" rather than "84.0%").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
