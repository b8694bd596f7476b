package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/attendance"
	"github.com/Core-Staff/core-staff/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `id, employee_id, employee_name, department, clock_in, clock_out, status`

func scanAttendanceLog(row pgx.Row) (attendance.AttendanceLog, error) {
	var log attendance.AttendanceLog
	err := row.Scan(
		&log.ID, &log.EmployeeID, &log.EmployeeName, &log.Department,
		&log.ClockIn, &log.ClockOut, &log.Status,
	)
	return log, err
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Query != "" {
		baseWhere += fmt.Sprintf(" AND employee_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}
	if filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, filter.Department)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_logs
		WHERE ` + baseWhere + `
		ORDER BY clock_in DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		log, err := scanAttendanceLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_logs WHERE id = $1`

	log, err := scanAttendanceLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceLog{}, attendance.ErrLogNotFound
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to get attendance log by ID: %w", err)
	}

	return log, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, log attendance.AttendanceLog) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (
			id, employee_id, employee_name, department, clock_in, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		log.ID,
		log.EmployeeID,
		log.EmployeeName,
		log.Department,
		log.ClockIn,
		log.Status,
	).Scan(&log.ID)

	if err != nil {
		return attendance.AttendanceLog{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return log, nil
}

// Close implements attendance.AttendanceRepository.
func (r *attendanceRepository) Close(ctx context.Context, id string, clockOut time.Time) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET clock_out = $1, status = 'closed'
		WHERE id = $2
		RETURNING ` + attendanceColumns + `
	`

	log, err := scanAttendanceLog(q.QueryRow(ctx, query, clockOut, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceLog{}, attendance.ErrLogNotFound
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to close attendance log: %w", err)
	}

	return log, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
