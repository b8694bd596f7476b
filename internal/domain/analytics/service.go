package analytics

import "context"

// AnalyticsService computes the reporting dashboard aggregates. Each method is
// a stateless single-pass aggregation over fresh reads; identical input
// snapshots produce identical output.
type AnalyticsService interface {
	AttendanceTrends(ctx context.Context, periodDays int) ([]TrendPoint, error)
	DepartmentRollup(ctx context.Context, periodDays int) ([]DepartmentRow, error)
	KPIMetrics(ctx context.Context, periodDays int) ([]Metric, error)
	PerformanceDistribution(ctx context.Context, periodDays int) ([]DistributionRow, error)
	TopPerformers(ctx context.Context, periodDays, limit int) ([]TopPerformerRow, error)
	Overview(ctx context.Context, periodDays, limit int) (*Overview, error)
}
