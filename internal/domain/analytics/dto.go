package analytics

// ChangeType classifies a KPI movement between two periods.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

// TrendPoint is one bucket of the attendance trend chart. The label key is
// "month" regardless of bucket granularity; the chart uses it as the x-axis
// label for days and weeks too.
type TrendPoint struct {
	Label   string  `json:"month"`
	Present float64 `json:"present"`
	Absent  float64 `json:"absent"`
	Late    float64 `json:"late"`
}

// DepartmentRow summarizes one department over the reporting period.
type DepartmentRow struct {
	Name           string  `json:"name"`
	Employees      int     `json:"employees"`
	AvgAttendance  float64 `json:"avgAttendance"`
	AvgPerformance float64 `json:"avgPerformance"`
}

// Metric is one headline KPI card. Value is either a count or a formatted
// percentage string depending on the metric.
type Metric struct {
	Title      string      `json:"title"`
	Value      interface{} `json:"value"`
	Change     float64     `json:"change"`
	ChangeType ChangeType  `json:"changeType"`
	Icon       string      `json:"icon"`
}

// DistributionRow is one fixed band of the performance distribution. All five
// bands are always emitted, including empty ones.
type DistributionRow struct {
	Rating     string  `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TopPerformerRow is one ranked employee by average review score.
type TopPerformerRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Score      float64 `json:"score"`
}

// Overview is the combined response for the reporting dashboard.
type Overview struct {
	Metrics          []Metric          `json:"metrics"`
	AttendanceTrends []TrendPoint      `json:"attendance_trends"`
	Departments      []DepartmentRow   `json:"departments"`
	Distribution     []DistributionRow `json:"distribution"`
	TopPerformers    []TopPerformerRow `json:"top_performers"`
}
