package http

import (
	"log/slog"
	"net/http"

	"github.com/Core-Staff/core-staff/internal/domain/analytics"
	"github.com/Core-Staff/core-staff/internal/handler/http/response"
)

type AnalyticsHandler interface {
	AttendanceTrends(w http.ResponseWriter, r *http.Request)
	DepartmentRollup(w http.ResponseWriter, r *http.Request)
	KPIMetrics(w http.ResponseWriter, r *http.Request)
	PerformanceDistribution(w http.ResponseWriter, r *http.Request)
	TopPerformers(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// AttendanceTrends implements AnalyticsHandler.
func (h *analyticsHandlerImpl) AttendanceTrends(w http.ResponseWriter, r *http.Request) {
	periodDays := analytics.ParsePeriodDays(r.URL.Query().Get("period"))

	result, err := h.analyticsService.AttendanceTrends(r.Context(), periodDays)
	if err != nil {
		slog.Error("Attendance trends error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentRollup implements AnalyticsHandler.
func (h *analyticsHandlerImpl) DepartmentRollup(w http.ResponseWriter, r *http.Request) {
	periodDays := analytics.ParsePeriodDays(r.URL.Query().Get("period"))

	result, err := h.analyticsService.DepartmentRollup(r.Context(), periodDays)
	if err != nil {
		slog.Error("Department rollup error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// KPIMetrics implements AnalyticsHandler.
func (h *analyticsHandlerImpl) KPIMetrics(w http.ResponseWriter, r *http.Request) {
	periodDays := analytics.ParsePeriodDays(r.URL.Query().Get("period"))

	result, err := h.analyticsService.KPIMetrics(r.Context(), periodDays)
	if err != nil {
		slog.Error("KPI metrics error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PerformanceDistribution implements AnalyticsHandler.
func (h *analyticsHandlerImpl) PerformanceDistribution(w http.ResponseWriter, r *http.Request) {
	periodDays := analytics.ParsePeriodDays(r.URL.Query().Get("period"))

	result, err := h.analyticsService.PerformanceDistribution(r.Context(), periodDays)
	if err != nil {
		slog.Error("Performance distribution error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TopPerformers implements AnalyticsHandler.
func (h *analyticsHandlerImpl) TopPerformers(w http.ResponseWriter, r *http.Request) {
	periodDays := analytics.ParsePeriodDays(r.URL.Query().Get("period"))
	limit := analytics.ParseTopLimit(r.URL.Query().Get("limit"))

	result, err := h.analyticsService.TopPerformers(r.Context(), periodDays, limit)
	if err != nil {
		slog.Error("Top performers error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview implements AnalyticsHandler.
func (h *analyticsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	periodDays := analytics.ParsePeriodDays(r.URL.Query().Get("period"))
	limit := analytics.ParseTopLimit(r.URL.Query().Get("limit"))

	result, err := h.analyticsService.Overview(r.Context(), periodDays, limit)
	if err != nil {
		slog.Error("Analytics overview error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
