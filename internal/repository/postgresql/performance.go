package postgresql

import (
	"context"
	"fmt"

	"github.com/Core-Staff/core-staff/internal/domain/performance"
	"github.com/Core-Staff/core-staff/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reviewRepository struct {
	db *database.DB
}

const reviewColumns = `
	id, employee_id, employee_name, reviewer_id, reviewer_name, review_date,
	overall_rating, position, period, status,
	strengths, areas_for_improvement, goals, comments,
	created_at, updated_at`

func scanReview(row pgx.Row) (performance.Review, error) {
	var rv performance.Review
	err := row.Scan(
		&rv.ID, &rv.EmployeeID, &rv.EmployeeName, &rv.ReviewerID, &rv.ReviewerName, &rv.ReviewDate,
		&rv.OverallRating, &rv.Position, &rv.Period, &rv.Status,
		&rv.Strengths, &rv.AreasForImprovement, &rv.Goals, &rv.Comments,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	return rv, err
}

// List implements performance.ReviewRepository.
func (r *reviewRepository) List(ctx context.Context, filter performance.ReviewListFilter) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.ReviewerID != "" {
		baseWhere += fmt.Sprintf(" AND reviewer_id = $%d", argIdx)
		args = append(args, filter.ReviewerID)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + reviewColumns + `
		FROM performance_reviews
		WHERE ` + baseWhere + `
		ORDER BY review_date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

// GetByID implements performance.ReviewRepository.
func (r *reviewRepository) GetByID(ctx context.Context, id string) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + ` FROM performance_reviews WHERE id = $1`

	rv, err := scanReview(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to get performance review by ID: %w", err)
	}

	return rv, nil
}

// Create implements performance.ReviewRepository.
func (r *reviewRepository) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, employee_name, reviewer_id, reviewer_name, review_date,
			overall_rating, position, period, status,
			strengths, areas_for_improvement, goals, comments
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		review.ID,
		review.EmployeeID,
		review.EmployeeName,
		review.ReviewerID,
		review.ReviewerName,
		review.ReviewDate,
		review.OverallRating,
		review.Position,
		review.Period,
		review.Status,
		review.Strengths,
		review.AreasForImprovement,
		review.Goals,
		review.Comments,
	).Scan(&review.CreatedAt, &review.UpdatedAt)

	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return review, nil
}

// Update implements performance.ReviewRepository.
func (r *reviewRepository) Update(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews SET
			review_date = $1, overall_rating = $2, position = $3, period = $4, status = $5,
			strengths = $6, areas_for_improvement = $7, goals = $8, comments = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		review.ReviewDate,
		review.OverallRating,
		review.Position,
		review.Period,
		review.Status,
		review.Strengths,
		review.AreasForImprovement,
		review.Goals,
		review.Comments,
		review.ID,
	).Scan(&review.CreatedAt, &review.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to update performance review: %w", err)
	}

	return review, nil
}

// Delete implements performance.ReviewRepository.
func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM performance_reviews WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return performance.ErrReviewNotFound
	}

	return nil
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepository{db: db}
}

type goalRepository struct {
	db *database.DB
}

const goalColumns = `
	id, employee_id, title, description, category, status, progress, deadline,
	milestones, created_at, updated_at`

func scanGoal(row pgx.Row) (performance.Goal, error) {
	var g performance.Goal
	err := row.Scan(
		&g.ID, &g.EmployeeID, &g.Title, &g.Description, &g.Category, &g.Status, &g.Progress, &g.Deadline,
		&g.Milestones, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

// List implements performance.GoalRepository.
func (r *goalRepository) List(ctx context.Context, filter performance.GoalListFilter) ([]performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + goalColumns + `
		FROM performance_goals
		WHERE ` + baseWhere + `
		ORDER BY deadline ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance goals: %w", err)
	}
	defer rows.Close()

	var goals []performance.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance goal: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// GetByID implements performance.GoalRepository.
func (r *goalRepository) GetByID(ctx context.Context, id string) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + goalColumns + ` FROM performance_goals WHERE id = $1`

	g, err := scanGoal(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Goal{}, performance.ErrGoalNotFound
		}
		return performance.Goal{}, fmt.Errorf("failed to get performance goal by ID: %w", err)
	}

	return g, nil
}

// Create implements performance.GoalRepository.
func (r *goalRepository) Create(ctx context.Context, goal performance.Goal) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_goals (
			id, employee_id, title, description, category, status, progress, deadline, milestones
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		goal.ID,
		goal.EmployeeID,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Status,
		goal.Progress,
		goal.Deadline,
		goal.Milestones,
	).Scan(&goal.CreatedAt, &goal.UpdatedAt)

	if err != nil {
		return performance.Goal{}, fmt.Errorf("failed to create performance goal: %w", err)
	}

	return goal, nil
}

// Update implements performance.GoalRepository.
func (r *goalRepository) Update(ctx context.Context, goal performance.Goal) (performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_goals SET
			title = $1, description = $2, category = $3, status = $4,
			progress = $5, deadline = $6, milestones = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Status,
		goal.Progress,
		goal.Deadline,
		goal.Milestones,
		goal.ID,
	).Scan(&goal.CreatedAt, &goal.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Goal{}, performance.ErrGoalNotFound
		}
		return performance.Goal{}, fmt.Errorf("failed to update performance goal: %w", err)
	}

	return goal, nil
}

// Delete implements performance.GoalRepository.
func (r *goalRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM performance_goals WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance goal: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return performance.ErrGoalNotFound
	}

	return nil
}

func NewGoalRepository(db *database.DB) performance.GoalRepository {
	return &goalRepository{db: db}
}
