package performance

import "context"

type PerformanceService interface {
	ListReviews(ctx context.Context, filter ReviewListFilter) ([]ReviewResponse, error)
	GetReview(ctx context.Context, id string) (ReviewResponse, error)
	CreateReview(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	UpdateReview(ctx context.Context, id string, req UpdateReviewRequest) (ReviewResponse, error)
	DeleteReview(ctx context.Context, id string) error

	ListGoals(ctx context.Context, filter GoalListFilter) ([]GoalResponse, error)
	GetGoal(ctx context.Context, id string) (GoalResponse, error)
	CreateGoal(ctx context.Context, req CreateGoalRequest) (GoalResponse, error)
	UpdateGoal(ctx context.Context, id string, req UpdateGoalRequest) (GoalResponse, error)
	DeleteGoal(ctx context.Context, id string) error

	// Stats summarizes reviews and goals, optionally for one employee.
	Stats(ctx context.Context, employeeID string) (*StatsResponse, error)
}
