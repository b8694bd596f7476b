package performance

import (
	"time"

	"github.com/Core-Staff/core-staff/internal/pkg/validator"
)

var (
	validReviewStatuses = []string{
		string(ReviewStatusCompleted),
		string(ReviewStatusInProgress),
		string(ReviewStatusPending),
		string(ReviewStatusDraft),
	}
	validGoalStatuses = []string{
		string(GoalStatusNotStarted),
		string(GoalStatusInProgress),
		string(GoalStatusCompleted),
	}
	validGoalCategories = []string{
		string(GoalCategoryProfessional),
		string(GoalCategoryTechnical),
		string(GoalCategoryLeadership),
		string(GoalCategoryPersonal),
	}
)

// ========== REVIEWS ==========

type CreateReviewRequest struct {
	EmployeeID          string   `json:"employeeId"`
	EmployeeName        string   `json:"employeeName"`
	ReviewerID          string   `json:"reviewerId"`
	ReviewerName        string   `json:"reviewerName"`
	ReviewDate          string   `json:"reviewDate"`
	OverallRating       int      `json:"overallRating"`
	Position            string   `json:"position"`
	Period              string   `json:"period"`
	Status              string   `json:"status"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Goals               []string `json:"goals"`
	Comments            string   `json:"comments"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"employeeId":   r.EmployeeID,
		"employeeName": r.EmployeeName,
		"reviewerId":   r.ReviewerID,
		"reviewerName": r.ReviewerName,
		"reviewDate":   r.ReviewDate,
	}
	for _, field := range []string{"employeeId", "employeeName", "reviewerId", "reviewerName", "reviewDate"} {
		if validator.IsEmpty(required[field]) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if r.ReviewDate != "" {
		if _, ok := validator.IsValidDateTime(r.ReviewDate); !ok {
			if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "reviewDate",
					Message: "reviewDate must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}
	if r.OverallRating < 1 || r.OverallRating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "overallRating",
			Message: "overallRating must be an integer between 1 and 5",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, validReviewStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: completed, in-progress, pending, draft",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReviewRequest struct {
	ReviewDate          *string  `json:"reviewDate"`
	OverallRating       *int     `json:"overallRating"`
	Position            *string  `json:"position"`
	Period              *string  `json:"period"`
	Status              *string  `json:"status"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Goals               []string `json:"goals"`
	Comments            *string  `json:"comments"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReviewDate != nil {
		if _, ok := validator.IsValidDateTime(*r.ReviewDate); !ok {
			if _, ok := validator.IsValidDate(*r.ReviewDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "reviewDate",
					Message: "reviewDate must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}
	if r.OverallRating != nil && (*r.OverallRating < 1 || *r.OverallRating > 5) {
		errs = append(errs, validator.ValidationError{
			Field:   "overallRating",
			Message: "overallRating must be an integer between 1 and 5",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validReviewStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: completed, in-progress, pending, draft",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReviewListFilter narrows the review listing.
type ReviewListFilter struct {
	EmployeeID string
	ReviewerID string
	Status     string
}

type ReviewResponse struct {
	ID                  string   `json:"id"`
	EmployeeID          string   `json:"employeeId"`
	EmployeeName        string   `json:"employeeName"`
	ReviewerID          string   `json:"reviewerId"`
	ReviewerName        string   `json:"reviewerName"`
	ReviewDate          string   `json:"reviewDate"`
	OverallRating       int      `json:"overallRating"`
	Position            *string  `json:"position,omitempty"`
	Period              *string  `json:"period,omitempty"`
	Status              string   `json:"status"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Goals               []string `json:"goals"`
	Comments            *string  `json:"comments,omitempty"`
}

func ToReviewResponse(rv Review) ReviewResponse {
	return ReviewResponse{
		ID:                  rv.ID,
		EmployeeID:          rv.EmployeeID,
		EmployeeName:        rv.EmployeeName,
		ReviewerID:          rv.ReviewerID,
		ReviewerName:        rv.ReviewerName,
		ReviewDate:          rv.ReviewDate.UTC().Format(time.RFC3339),
		OverallRating:       rv.OverallRating,
		Position:            rv.Position,
		Period:              rv.Period,
		Status:              string(rv.Status),
		Strengths:           emptyIfNil(rv.Strengths),
		AreasForImprovement: emptyIfNil(rv.AreasForImprovement),
		Goals:               emptyIfNil(rv.Goals),
		Comments:            rv.Comments,
	}
}

func ToReviewResponseList(reviews []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, ToReviewResponse(rv))
	}
	return out
}

// ========== GOALS ==========

type CreateGoalRequest struct {
	EmployeeID  string   `json:"employeeId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Progress    int      `json:"progress"`
	Deadline    string   `json:"deadline"`
	Milestones  []string `json:"milestones"`
}

func (r *CreateGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if validator.IsEmpty(r.Deadline) {
		errs = append(errs, validator.ValidationError{
			Field:   "deadline",
			Message: "deadline is required",
		})
	} else if _, ok := validator.IsValidDate(r.Deadline); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "deadline",
			Message: "deadline must be in YYYY-MM-DD format",
		})
	}
	if r.Category != "" && !validator.IsInSlice(r.Category, validGoalCategories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: professional, technical, leadership, personal",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, validGoalStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: not-started, in-progress, completed",
		})
	}
	if r.Progress < 0 || r.Progress > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateGoalRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	Progress    *int     `json:"progress"`
	Deadline    *string  `json:"deadline"`
	Milestones  []string `json:"milestones"`
}

func (r *UpdateGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}
	if r.Category != nil && !validator.IsInSlice(*r.Category, validGoalCategories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: professional, technical, leadership, personal",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validGoalStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: not-started, in-progress, completed",
		})
	}
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}
	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GoalListFilter narrows the goal listing.
type GoalListFilter struct {
	EmployeeID string
	Status     string
}

type GoalResponse struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employeeId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Progress    int      `json:"progress"`
	Deadline    string   `json:"deadline"`
	CreatedAt   string   `json:"createdAt"`
	Milestones  []string `json:"milestones"`
}

func ToGoalResponse(g Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		EmployeeID:  g.EmployeeID,
		Title:       g.Title,
		Description: g.Description,
		Category:    string(g.Category),
		Status:      string(g.Status),
		Progress:    g.Progress,
		Deadline:    g.Deadline.UTC().Format("2006-01-02"),
		CreatedAt:   g.CreatedAt.UTC().Format("2006-01-02"),
		Milestones:  emptyIfNil(g.Milestones),
	}
}

func ToGoalResponseList(goals []Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, ToGoalResponse(g))
	}
	return out
}

// ========== STATS ==========

type ReviewStats struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Pending    int     `json:"pending"`
	InProgress int     `json:"inProgress"`
	AvgRating  float64 `json:"avgRating"`
}

type GoalStats struct {
	Total       int            `json:"total"`
	Completed   int            `json:"completed"`
	InProgress  int            `json:"inProgress"`
	NotStarted  int            `json:"notStarted"`
	AvgProgress float64        `json:"avgProgress"`
	ByCategory  map[string]int `json:"byCategory"`
}

type TrendEntry struct {
	Period string `json:"period"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
}

type TrendStats struct {
	PerformanceTrend []TrendEntry `json:"performanceTrend"`
}

type StatsResponse struct {
	Reviews ReviewStats `json:"reviews"`
	Goals   GoalStats   `json:"goals"`
	Trends  TrendStats  `json:"trends"`
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
