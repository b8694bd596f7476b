package performance

import "context"

type ReviewRepository interface {
	// List retrieves reviews newest review date first, applying the filter.
	List(ctx context.Context, filter ReviewListFilter) ([]Review, error)

	GetByID(ctx context.Context, id string) (Review, error)
	Create(ctx context.Context, review Review) (Review, error)
	Update(ctx context.Context, review Review) (Review, error)
	Delete(ctx context.Context, id string) error
}

type GoalRepository interface {
	// List retrieves goals nearest deadline first, applying the filter.
	List(ctx context.Context, filter GoalListFilter) ([]Goal, error)

	GetByID(ctx context.Context, id string) (Goal, error)
	Create(ctx context.Context, goal Goal) (Goal, error)
	Update(ctx context.Context, goal Goal) (Goal, error)
	Delete(ctx context.Context, id string) error
}
