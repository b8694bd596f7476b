package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/analytics"
	"github.com/Core-Staff/core-staff/internal/pkg/database"
)

type analyticsRepository struct {
	db *database.DB
}

// ListEmployees implements analytics.AnalyticsRepository.
func (r *analyticsRepository) ListEmployees(ctx context.Context) ([]analytics.EmployeeRef, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department
		FROM employees
		ORDER BY join_date ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var refs []analytics.EmployeeRef
	for rows.Next() {
		var ref analytics.EmployeeRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Department); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// ListAttendanceEvents implements analytics.AnalyticsRepository.
func (r *analyticsRepository) ListAttendanceEvents(ctx context.Context, start, end time.Time) ([]analytics.AttendanceEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, clock_in
		FROM attendance_logs
		WHERE clock_in >= $1 AND clock_in <= $2
		ORDER BY clock_in ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance events: %w", err)
	}
	defer rows.Close()

	var events []analytics.AttendanceEvent
	for rows.Next() {
		var ev analytics.AttendanceEvent
		if err := rows.Scan(&ev.EmployeeID, &ev.ClockIn); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListReviewEvents implements analytics.AnalyticsRepository.
func (r *analyticsRepository) ListReviewEvents(ctx context.Context, start, end time.Time) ([]analytics.ReviewEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, overall_rating, review_date
		FROM performance_reviews
		WHERE review_date >= $1 AND review_date <= $2
		ORDER BY review_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query review events: %w", err)
	}
	defer rows.Close()

	var events []analytics.ReviewEvent
	for rows.Next() {
		var ev analytics.ReviewEvent
		if err := rows.Scan(&ev.EmployeeID, &ev.OverallRating, &ev.ReviewDate); err != nil {
			return nil, fmt.Errorf("failed to scan review event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// CountEmployeesJoinedBy implements analytics.AnalyticsRepository.
func (r *analyticsRepository) CountEmployeesJoinedBy(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM employees WHERE join_date <= $1`

	var total int64
	if err := q.QueryRow(ctx, query, cutoff).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}

// CountAttendanceEvents implements analytics.AnalyticsRepository.
func (r *analyticsRepository) CountAttendanceEvents(ctx context.Context, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM attendance_logs WHERE clock_in >= $1 AND clock_in <= $2`

	var total int64
	if err := q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count attendance events: %w", err)
	}

	return total, nil
}

// CountLeaveRequests implements analytics.AnalyticsRepository.
func (r *analyticsRepository) CountLeaveRequests(ctx context.Context, start, end time.Time, status string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM leave_requests WHERE created_at >= $1 AND created_at <= $2`
	args := []interface{}{start, end}

	if status != "" {
		query += ` AND status = $3`
		args = append(args, status)
	}

	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	return total, nil
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{db: db}
}
