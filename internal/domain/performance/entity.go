package performance

import "time"

type ReviewStatus string

const (
	ReviewStatusCompleted  ReviewStatus = "completed"
	ReviewStatusInProgress ReviewStatus = "in-progress"
	ReviewStatusPending    ReviewStatus = "pending"
	ReviewStatusDraft      ReviewStatus = "draft"
)

type Review struct {
	ID                  string
	EmployeeID          string
	EmployeeName        string
	ReviewerID          string
	ReviewerName        string
	ReviewDate          time.Time
	OverallRating       int
	Position            *string
	Period              *string
	Status              ReviewStatus
	Strengths           []string
	AreasForImprovement []string
	Goals               []string
	Comments            *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not-started"
	GoalStatusInProgress GoalStatus = "in-progress"
	GoalStatusCompleted  GoalStatus = "completed"
)

type GoalCategory string

const (
	GoalCategoryProfessional GoalCategory = "professional"
	GoalCategoryTechnical    GoalCategory = "technical"
	GoalCategoryLeadership   GoalCategory = "leadership"
	GoalCategoryPersonal     GoalCategory = "personal"
)

type Goal struct {
	ID          string
	EmployeeID  string
	Title       string
	Description string
	Category    GoalCategory
	Status      GoalStatus
	Progress    int
	Deadline    time.Time
	Milestones  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
