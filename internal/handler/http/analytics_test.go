package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Core-Staff/core-staff/internal/domain/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyticsService records the parameters each endpoint was called with.
type stubAnalyticsService struct {
	periodDays int
	limit      int
}

func (s *stubAnalyticsService) AttendanceTrends(ctx context.Context, periodDays int) ([]analytics.TrendPoint, error) {
	s.periodDays = periodDays
	return []analytics.TrendPoint{{Label: "2026-03-10", Present: 80, Absent: 20, Late: 0}}, nil
}

func (s *stubAnalyticsService) DepartmentRollup(ctx context.Context, periodDays int) ([]analytics.DepartmentRow, error) {
	s.periodDays = periodDays
	return []analytics.DepartmentRow{}, nil
}

func (s *stubAnalyticsService) KPIMetrics(ctx context.Context, periodDays int) ([]analytics.Metric, error) {
	s.periodDays = periodDays
	return []analytics.Metric{}, nil
}

func (s *stubAnalyticsService) PerformanceDistribution(ctx context.Context, periodDays int) ([]analytics.DistributionRow, error) {
	s.periodDays = periodDays
	return []analytics.DistributionRow{}, nil
}

func (s *stubAnalyticsService) TopPerformers(ctx context.Context, periodDays, limit int) ([]analytics.TopPerformerRow, error) {
	s.periodDays = periodDays
	s.limit = limit
	return []analytics.TopPerformerRow{}, nil
}

func (s *stubAnalyticsService) Overview(ctx context.Context, periodDays, limit int) (*analytics.Overview, error) {
	s.periodDays = periodDays
	s.limit = limit
	return &analytics.Overview{}, nil
}

func TestAnalyticsHandler_AttendanceTrends(t *testing.T) {
	t.Parallel()
	stub := &stubAnalyticsService{}
	handler := NewAnalyticsHandler(stub)

	req := httptest.NewRequest("GET", "/api/v1/analytics/attendance-trends?period=90", nil)
	rec := httptest.NewRecorder()

	handler.AttendanceTrends(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, 90, stub.periodDays)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Month   string  `json:"month"`
			Present float64 `json:"present"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	// The bucket label is serialized under the "month" key.
	assert.Equal(t, "2026-03-10", body.Data[0].Month)
	assert.Equal(t, 80.0, body.Data[0].Present)
}

func TestAnalyticsHandler_PeriodFallsBackToDefault(t *testing.T) {
	t.Parallel()
	stub := &stubAnalyticsService{}
	handler := NewAnalyticsHandler(stub)

	req := httptest.NewRequest("GET", "/api/v1/analytics/kpi-metrics?period=bogus", nil)
	rec := httptest.NewRecorder()

	handler.KPIMetrics(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, analytics.DefaultPeriodDays, stub.periodDays)
}

func TestAnalyticsHandler_TopPerformersClampsLimit(t *testing.T) {
	t.Parallel()
	stub := &stubAnalyticsService{}
	handler := NewAnalyticsHandler(stub)

	req := httptest.NewRequest("GET", "/api/v1/analytics/top-performers?limit=500", nil)
	rec := httptest.NewRecorder()

	handler.TopPerformers(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, analytics.DefaultPeriodDays, stub.periodDays)
	assert.Equal(t, analytics.MaxTopLimit, stub.limit)
}

func TestAnalyticsHandler_Overview(t *testing.T) {
	t.Parallel()
	stub := &stubAnalyticsService{}
	handler := NewAnalyticsHandler(stub)

	req := httptest.NewRequest("GET", "/api/v1/analytics/overview?period=7&limit=3", nil)
	rec := httptest.NewRecorder()

	handler.Overview(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, 7, stub.periodDays)
	assert.Equal(t, 3, stub.limit)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}
