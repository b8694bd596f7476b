package performance

import (
	"context"
	"testing"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews []performance.Review
}

func (f *fakeReviewRepo) List(ctx context.Context, filter performance.ReviewListFilter) ([]performance.Review, error) {
	var out []performance.Review
	for _, rv := range f.reviews {
		if filter.EmployeeID != "" && rv.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.ReviewerID != "" && rv.ReviewerID != filter.ReviewerID {
			continue
		}
		if filter.Status != "" && string(rv.Status) != filter.Status {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (performance.Review, error) {
	for _, rv := range f.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return performance.Review{}, performance.ErrReviewNotFound
}

func (f *fakeReviewRepo) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	review.CreatedAt = time.Now().UTC()
	review.UpdatedAt = review.CreatedAt
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review performance.Review) (performance.Review, error) {
	for i, rv := range f.reviews {
		if rv.ID == review.ID {
			review.UpdatedAt = time.Now().UTC()
			f.reviews[i] = review
			return review, nil
		}
	}
	return performance.Review{}, performance.ErrReviewNotFound
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	for i, rv := range f.reviews {
		if rv.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return performance.ErrReviewNotFound
}

type fakeGoalRepo struct {
	goals []performance.Goal
}

func (f *fakeGoalRepo) List(ctx context.Context, filter performance.GoalListFilter) ([]performance.Goal, error) {
	var out []performance.Goal
	for _, g := range f.goals {
		if filter.EmployeeID != "" && g.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(g.Status) != filter.Status {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGoalRepo) GetByID(ctx context.Context, id string) (performance.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return performance.Goal{}, performance.ErrGoalNotFound
}

func (f *fakeGoalRepo) Create(ctx context.Context, goal performance.Goal) (performance.Goal, error) {
	goal.CreatedAt = time.Now().UTC()
	goal.UpdatedAt = goal.CreatedAt
	f.goals = append(f.goals, goal)
	return goal, nil
}

func (f *fakeGoalRepo) Update(ctx context.Context, goal performance.Goal) (performance.Goal, error) {
	for i, g := range f.goals {
		if g.ID == goal.ID {
			goal.UpdatedAt = time.Now().UTC()
			f.goals[i] = goal
			return goal, nil
		}
	}
	return performance.Goal{}, performance.ErrGoalNotFound
}

func (f *fakeGoalRepo) Delete(ctx context.Context, id string) error {
	for i, g := range f.goals {
		if g.ID == id {
			f.goals = append(f.goals[:i], f.goals[i+1:]...)
			return nil
		}
	}
	return performance.ErrGoalNotFound
}

func reviewDate(day int) time.Time {
	return time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
}

func strptr(s string) *string { return &s }

func TestCreateReview_Defaults(t *testing.T) {
	t.Parallel()
	reviews := &fakeReviewRepo{}
	svc := NewPerformanceService(reviews, &fakeGoalRepo{})

	resp, err := svc.CreateReview(context.Background(), performance.CreateReviewRequest{
		EmployeeID:    "e1",
		EmployeeName:  "Ana",
		ReviewerID:    "m1",
		ReviewerName:  "Mia",
		ReviewDate:    "2026-03-10",
		OverallRating: 4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []string{}, resp.Strengths)
	assert.Equal(t, []string{}, resp.Goals)
	require.Len(t, reviews.reviews, 1)
	assert.True(t, reviews.reviews[0].ReviewDate.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestCreateReview_ValidationFailure(t *testing.T) {
	t.Parallel()
	svc := NewPerformanceService(&fakeReviewRepo{}, &fakeGoalRepo{})

	_, err := svc.CreateReview(context.Background(), performance.CreateReviewRequest{
		EmployeeID:    "e1",
		OverallRating: 9,
	})
	require.Error(t, err)
}

func TestUpdateReview_MergesOnlyProvidedFields(t *testing.T) {
	t.Parallel()
	reviews := &fakeReviewRepo{reviews: []performance.Review{{
		ID:            "r1",
		EmployeeID:    "e1",
		EmployeeName:  "Ana",
		ReviewerID:    "m1",
		ReviewerName:  "Mia",
		ReviewDate:    reviewDate(1),
		OverallRating: 3,
		Status:        performance.ReviewStatusPending,
		Strengths:     []string{"communication"},
	}}}
	svc := NewPerformanceService(reviews, &fakeGoalRepo{})

	rating := 5
	resp, err := svc.UpdateReview(context.Background(), "r1", performance.UpdateReviewRequest{
		OverallRating: &rating,
		Status:        strptr("completed"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.OverallRating)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []string{"communication"}, resp.Strengths)
	assert.Equal(t, "Ana", resp.EmployeeName)
}

func TestCreateGoal_Defaults(t *testing.T) {
	t.Parallel()
	goals := &fakeGoalRepo{}
	svc := NewPerformanceService(&fakeReviewRepo{}, goals)

	resp, err := svc.CreateGoal(context.Background(), performance.CreateGoalRequest{
		EmployeeID:  "e1",
		Title:       "Ship the reporting module",
		Description: "Deliver the Q2 reporting milestone",
		Deadline:    "2026-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "professional", resp.Category)
	assert.Equal(t, "not-started", resp.Status)
	assert.Equal(t, 0, resp.Progress)
	assert.Equal(t, "2026-06-30", resp.Deadline)
}

func TestStats_TalliesAndAverages(t *testing.T) {
	t.Parallel()
	reviews := &fakeReviewRepo{reviews: []performance.Review{
		{ID: "r1", EmployeeID: "e1", ReviewDate: reviewDate(1), OverallRating: 4, Status: performance.ReviewStatusCompleted},
		{ID: "r2", EmployeeID: "e1", ReviewDate: reviewDate(2), OverallRating: 5, Status: performance.ReviewStatusCompleted},
		{ID: "r3", EmployeeID: "e1", ReviewDate: reviewDate(3), Status: performance.ReviewStatusPending},
		{ID: "r4", EmployeeID: "e1", ReviewDate: reviewDate(4), Status: performance.ReviewStatusInProgress},
		// Completed but unrated reviews stay out of the average.
		{ID: "r5", EmployeeID: "e1", ReviewDate: reviewDate(5), OverallRating: 0, Status: performance.ReviewStatusCompleted},
	}}
	goals := &fakeGoalRepo{goals: []performance.Goal{
		{ID: "g1", EmployeeID: "e1", Category: performance.GoalCategoryTechnical, Status: performance.GoalStatusCompleted, Progress: 100},
		{ID: "g2", EmployeeID: "e1", Category: performance.GoalCategoryTechnical, Status: performance.GoalStatusInProgress, Progress: 50},
		{ID: "g3", EmployeeID: "e1", Category: performance.GoalCategoryPersonal, Status: performance.GoalStatusNotStarted, Progress: 0},
	}}
	svc := NewPerformanceService(reviews, goals)

	stats, err := svc.Stats(context.Background(), "e1")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Reviews.Total)
	assert.Equal(t, 3, stats.Reviews.Completed)
	assert.Equal(t, 1, stats.Reviews.Pending)
	assert.Equal(t, 1, stats.Reviews.InProgress)
	assert.Equal(t, 4.5, stats.Reviews.AvgRating)

	assert.Equal(t, 3, stats.Goals.Total)
	assert.Equal(t, 1, stats.Goals.Completed)
	assert.Equal(t, 1, stats.Goals.InProgress)
	assert.Equal(t, 1, stats.Goals.NotStarted)
	assert.Equal(t, 50.0, stats.Goals.AvgProgress)
	assert.Equal(t, map[string]int{"technical": 2, "personal": 1}, stats.Goals.ByCategory)
}

func TestStats_TrendSpansAllEmployees(t *testing.T) {
	t.Parallel()
	reviews := &fakeReviewRepo{reviews: []performance.Review{
		{ID: "r1", EmployeeID: "e1", ReviewDate: reviewDate(1), OverallRating: 3, Status: performance.ReviewStatusCompleted, Period: strptr("Q1 2026")},
		{ID: "r2", EmployeeID: "e2", ReviewDate: reviewDate(5), OverallRating: 5, Status: performance.ReviewStatusCompleted},
		{ID: "r3", EmployeeID: "e2", ReviewDate: reviewDate(3), OverallRating: 4, Status: performance.ReviewStatusCompleted},
		{ID: "r4", EmployeeID: "e3", ReviewDate: reviewDate(4), OverallRating: 2, Status: performance.ReviewStatusCompleted},
		{ID: "r5", EmployeeID: "e3", ReviewDate: reviewDate(2), OverallRating: 1, Status: performance.ReviewStatusCompleted},
		{ID: "r6", EmployeeID: "e3", ReviewDate: reviewDate(6), OverallRating: 5, Status: performance.ReviewStatusPending},
	}}
	svc := NewPerformanceService(reviews, &fakeGoalRepo{})

	stats, err := svc.Stats(context.Background(), "e1")
	require.NoError(t, err)

	// The trend keeps the four newest completed reviews regardless of the
	// employee scope applied to the tallies.
	trend := stats.Trends.PerformanceTrend
	require.Len(t, trend, 4)
	assert.Equal(t, 5, trend[0].Rating)
	assert.Equal(t, 2, trend[1].Rating)
	assert.Equal(t, 4, trend[2].Rating)
	assert.Equal(t, 1, trend[3].Rating)
	assert.Equal(t, "2026-03-05T10:00:00Z", trend[0].Date)
}

func TestStats_EmptyRepositories(t *testing.T) {
	t.Parallel()
	svc := NewPerformanceService(&fakeReviewRepo{}, &fakeGoalRepo{})

	stats, err := svc.Stats(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Reviews.Total)
	assert.Equal(t, 0.0, stats.Reviews.AvgRating)
	assert.Equal(t, 0.0, stats.Goals.AvgProgress)
	assert.NotNil(t, stats.Trends.PerformanceTrend)
	assert.Empty(t, stats.Trends.PerformanceTrend)
}
