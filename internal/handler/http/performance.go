package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Core-Staff/core-staff/internal/domain/performance"
	"github.com/Core-Staff/core-staff/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	ListReviews(w http.ResponseWriter, r *http.Request)
	GetReview(w http.ResponseWriter, r *http.Request)
	CreateReview(w http.ResponseWriter, r *http.Request)
	UpdateReview(w http.ResponseWriter, r *http.Request)
	DeleteReview(w http.ResponseWriter, r *http.Request)

	ListGoals(w http.ResponseWriter, r *http.Request)
	GetGoal(w http.ResponseWriter, r *http.Request)
	CreateGoal(w http.ResponseWriter, r *http.Request)
	UpdateGoal(w http.ResponseWriter, r *http.Request)
	DeleteGoal(w http.ResponseWriter, r *http.Request)

	Stats(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// ListReviews implements PerformanceHandler.
func (h *performanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	filter := performance.ReviewListFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		ReviewerID: r.URL.Query().Get("reviewerId"),
		Status:     r.URL.Query().Get("status"),
	}

	result, err := h.performanceService.ListReviews(r.Context(), filter)
	if err != nil {
		slog.Error("Review list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetReview implements PerformanceHandler.
func (h *performanceHandlerImpl) GetReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.GetReview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateReview implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.CreateReview(r.Context(), req)
	if err != nil {
		slog.Error("Review create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review created successfully", result)
}

// UpdateReview implements PerformanceHandler.
func (h *performanceHandlerImpl) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req performance.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.UpdateReview(r.Context(), id, req)
	if err != nil {
		slog.Error("Review update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review updated successfully", result)
}

// DeleteReview implements PerformanceHandler.
func (h *performanceHandlerImpl) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeleteReview(r.Context(), id); err != nil {
		slog.Error("Review delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review deleted successfully", nil)
}

// ListGoals implements PerformanceHandler.
func (h *performanceHandlerImpl) ListGoals(w http.ResponseWriter, r *http.Request) {
	filter := performance.GoalListFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     r.URL.Query().Get("status"),
	}

	result, err := h.performanceService.ListGoals(r.Context(), filter)
	if err != nil {
		slog.Error("Goal list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) GetGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.GetGoal(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateGoalRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Goal create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.CreateGoal(r.Context(), req)
	if err != nil {
		slog.Error("Goal create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Goal created successfully", result)
}

// UpdateGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req performance.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Goal update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.UpdateGoal(r.Context(), id, req)
	if err != nil {
		slog.Error("Goal update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal updated successfully", result)
}

// DeleteGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeleteGoal(r.Context(), id); err != nil {
		slog.Error("Goal delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal deleted successfully", nil)
}

// Stats implements PerformanceHandler.
func (h *performanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")

	result, err := h.performanceService.Stats(r.Context(), employeeID)
	if err != nil {
		slog.Error("Performance stats error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
