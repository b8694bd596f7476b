package performance

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/performance"
	"github.com/google/uuid"
)

const trendLimit = 4

type PerformanceServiceImpl struct {
	reviewRepo performance.ReviewRepository
	goalRepo   performance.GoalRepository
}

func NewPerformanceService(reviewRepo performance.ReviewRepository, goalRepo performance.GoalRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{
		reviewRepo: reviewRepo,
		goalRepo:   goalRepo,
	}
}

// ListReviews implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListReviews(ctx context.Context, filter performance.ReviewListFilter) ([]performance.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return performance.ToReviewResponseList(reviews), nil
}

// GetReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetReview(ctx context.Context, id string) (performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	return performance.ToReviewResponse(review), nil
}

// CreateReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) CreateReview(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	status := performance.ReviewStatusCompleted
	if req.Status != "" {
		status = performance.ReviewStatus(req.Status)
	}

	review := performance.Review{
		ID:                  uuid.NewString(),
		EmployeeID:          req.EmployeeID,
		EmployeeName:        req.EmployeeName,
		ReviewerID:          req.ReviewerID,
		ReviewerName:        req.ReviewerName,
		ReviewDate:          parseDateOrDateTime(req.ReviewDate),
		OverallRating:       req.OverallRating,
		Position:            optional(req.Position),
		Period:              optional(req.Period),
		Status:              status,
		Strengths:           orEmpty(req.Strengths),
		AreasForImprovement: orEmpty(req.AreasForImprovement),
		Goals:               orEmpty(req.Goals),
		Comments:            optional(req.Comments),
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	return performance.ToReviewResponse(created), nil
}

// UpdateReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) UpdateReview(ctx context.Context, id string, req performance.UpdateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if req.ReviewDate != nil {
		review.ReviewDate = parseDateOrDateTime(*req.ReviewDate)
	}
	if req.OverallRating != nil {
		review.OverallRating = *req.OverallRating
	}
	if req.Position != nil {
		review.Position = req.Position
	}
	if req.Period != nil {
		review.Period = req.Period
	}
	if req.Status != nil {
		review.Status = performance.ReviewStatus(*req.Status)
	}
	if req.Strengths != nil {
		review.Strengths = req.Strengths
	}
	if req.AreasForImprovement != nil {
		review.AreasForImprovement = req.AreasForImprovement
	}
	if req.Goals != nil {
		review.Goals = req.Goals
	}
	if req.Comments != nil {
		review.Comments = req.Comments
	}

	updated, err := s.reviewRepo.Update(ctx, review)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	return performance.ToReviewResponse(updated), nil
}

// DeleteReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) DeleteReview(ctx context.Context, id string) error {
	return s.reviewRepo.Delete(ctx, id)
}

// ListGoals implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListGoals(ctx context.Context, filter performance.GoalListFilter) ([]performance.GoalResponse, error) {
	goals, err := s.goalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return performance.ToGoalResponseList(goals), nil
}

// GetGoal implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetGoal(ctx context.Context, id string) (performance.GoalResponse, error) {
	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return performance.GoalResponse{}, err
	}
	return performance.ToGoalResponse(goal), nil
}

// CreateGoal implements performance.PerformanceService.
func (s *PerformanceServiceImpl) CreateGoal(ctx context.Context, req performance.CreateGoalRequest) (performance.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.GoalResponse{}, err
	}

	category := performance.GoalCategoryProfessional
	if req.Category != "" {
		category = performance.GoalCategory(req.Category)
	}
	status := performance.GoalStatusNotStarted
	if req.Status != "" {
		status = performance.GoalStatus(req.Status)
	}

	deadline, _ := time.Parse("2006-01-02", req.Deadline)

	goal := performance.Goal{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Status:      status,
		Progress:    req.Progress,
		Deadline:    deadline,
		Milestones:  orEmpty(req.Milestones),
	}

	created, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return performance.GoalResponse{}, err
	}

	return performance.ToGoalResponse(created), nil
}

// UpdateGoal implements performance.PerformanceService.
func (s *PerformanceServiceImpl) UpdateGoal(ctx context.Context, id string, req performance.UpdateGoalRequest) (performance.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.GoalResponse{}, err
	}

	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return performance.GoalResponse{}, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Category != nil {
		goal.Category = performance.GoalCategory(*req.Category)
	}
	if req.Status != nil {
		goal.Status = performance.GoalStatus(*req.Status)
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if req.Deadline != nil {
		deadline, _ := time.Parse("2006-01-02", *req.Deadline)
		goal.Deadline = deadline
	}
	if req.Milestones != nil {
		goal.Milestones = req.Milestones
	}

	updated, err := s.goalRepo.Update(ctx, goal)
	if err != nil {
		return performance.GoalResponse{}, err
	}

	return performance.ToGoalResponse(updated), nil
}

// DeleteGoal implements performance.PerformanceService.
func (s *PerformanceServiceImpl) DeleteGoal(ctx context.Context, id string) error {
	return s.goalRepo.Delete(ctx, id)
}

// Stats implements performance.PerformanceService. Review and goal tallies
// are scoped to the employee when one is given; the trend always spans the
// whole review log.
func (s *PerformanceServiceImpl) Stats(ctx context.Context, employeeID string) (*performance.StatsResponse, error) {
	reviews, err := s.reviewRepo.List(ctx, performance.ReviewListFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.List(ctx, performance.GoalListFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, err
	}

	stats := &performance.StatsResponse{
		Reviews: performance.ReviewStats{Total: len(reviews)},
		Goals: performance.GoalStats{
			Total:      len(goals),
			ByCategory: map[string]int{},
		},
		Trends: performance.TrendStats{PerformanceTrend: []performance.TrendEntry{}},
	}

	ratingSum := 0
	ratingCount := 0
	for _, rv := range reviews {
		switch rv.Status {
		case performance.ReviewStatusCompleted:
			stats.Reviews.Completed++
		case performance.ReviewStatusPending:
			stats.Reviews.Pending++
		case performance.ReviewStatusInProgress:
			stats.Reviews.InProgress++
		}
		if rv.Status == performance.ReviewStatusCompleted && rv.OverallRating > 0 {
			ratingSum += rv.OverallRating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		stats.Reviews.AvgRating = round2(float64(ratingSum) / float64(ratingCount))
	}

	progressSum := 0
	for _, g := range goals {
		switch g.Status {
		case performance.GoalStatusCompleted:
			stats.Goals.Completed++
		case performance.GoalStatusInProgress:
			stats.Goals.InProgress++
		case performance.GoalStatusNotStarted:
			stats.Goals.NotStarted++
		}
		stats.Goals.ByCategory[string(g.Category)]++
		progressSum += g.Progress
	}
	if len(goals) > 0 {
		stats.Goals.AvgProgress = round2(float64(progressSum) / float64(len(goals)))
	}

	trend, err := s.performanceTrend(ctx)
	if err != nil {
		return nil, err
	}
	stats.Trends.PerformanceTrend = trend

	return stats, nil
}

// performanceTrend returns the latest completed reviews, newest first.
func (s *PerformanceServiceImpl) performanceTrend(ctx context.Context) ([]performance.TrendEntry, error) {
	completed, err := s.reviewRepo.List(ctx, performance.ReviewListFilter{
		Status: string(performance.ReviewStatusCompleted),
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].ReviewDate.After(completed[j].ReviewDate)
	})
	if len(completed) > trendLimit {
		completed = completed[:trendLimit]
	}

	trend := make([]performance.TrendEntry, 0, len(completed))
	for _, rv := range completed {
		period := ""
		if rv.Period != nil {
			period = *rv.Period
		}
		trend = append(trend, performance.TrendEntry{
			Period: period,
			Rating: rv.OverallRating,
			Date:   rv.ReviewDate.UTC().Format(time.RFC3339),
		})
	}

	return trend, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func parseDateOrDateTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	t, _ := time.Parse("2006-01-02", s)
	return t.UTC()
}
