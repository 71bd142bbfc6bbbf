package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

type attendanceRepo struct {
	db *sqlx.DB
}

// NewAttendanceRepo creates a new PostgreSQL-backed AttendanceRepository.
func NewAttendanceRepo(db *sqlx.DB) port.AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	att.ID = uuid.New()
	now := time.Now().UTC()
	att.CreatedAt = now
	att.UpdatedAt = now

	query := `INSERT INTO attendance (id, employee_id, day, check_in, check_out, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.EmployeeID, att.Day, att.CheckIn, att.CheckOut, att.Status,
		att.CreatedAt, att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("attendanceRepo.Create: %w", err)
	}
	return nil
}

func (r *attendanceRepo) GetByEmployeeAndDay(ctx context.Context, employeeID uuid.UUID, day time.Time) (*domain.Attendance, error) {
	var att domain.Attendance
	err := r.db.GetContext(ctx, &att,
		"SELECT * FROM attendance WHERE employee_id = $1 AND day = $2", employeeID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attendanceRepo.GetByEmployeeAndDay: %w", err)
	}
	return &att, nil
}

func (r *attendanceRepo) Update(ctx context.Context, att *domain.Attendance) error {
	att.UpdatedAt = time.Now().UTC()
	query := `UPDATE attendance SET check_in = $1, check_out = $2, status = $3, updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		att.CheckIn, att.CheckOut, att.Status, att.UpdatedAt, att.ID)
	if err != nil {
		return fmt.Errorf("attendanceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *attendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.SelectContext(ctx, &records,
		`SELECT * FROM attendance
		 WHERE employee_id = $1
		   AND EXTRACT(YEAR FROM day) = $2
		   AND EXTRACT(MONTH FROM day) = $3
		 ORDER BY day`,
		employeeID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("attendanceRepo.ListByEmployeeMonth: %w", err)
	}
	return records, nil
}

func (r *attendanceRepo) ListByDay(ctx context.Context, day time.Time, offset, limit int) ([]domain.Attendance, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM attendance WHERE day = $1", day)
	if err != nil {
		return nil, 0, fmt.Errorf("attendanceRepo.ListByDay count: %w", err)
	}

	var records []domain.Attendance
	err = r.db.SelectContext(ctx, &records,
		"SELECT * FROM attendance WHERE day = $1 ORDER BY created_at LIMIT $2 OFFSET $3",
		day, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("attendanceRepo.ListByDay: %w", err)
	}
	return records, total, nil
}

func (r *attendanceRepo) CountByStatus(ctx context.Context, employeeID uuid.UUID, year int, month time.Month, status domain.AttendanceStatus) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM attendance
		 WHERE employee_id = $1
		   AND EXTRACT(YEAR FROM day) = $2
		   AND EXTRACT(MONTH FROM day) = $3
		   AND status = $4`,
		employeeID, year, int(month), status)
	if err != nil {
		return 0, fmt.Errorf("attendanceRepo.CountByStatus: %w", err)
	}
	return count, nil
}
