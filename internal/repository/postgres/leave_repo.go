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

type leaveRepo struct {
	db *sqlx.DB
}

// NewLeaveRepo creates a new PostgreSQL-backed LeaveRepository.
func NewLeaveRepo(db *sqlx.DB) port.LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, req *domain.LeaveRequest) error {
	req.ID = uuid.New()
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `INSERT INTO leave_requests (id, employee_id, from_date, to_date, reason, status,
		decided_by, decided_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.EmployeeID, req.FromDate, req.ToDate, req.Reason, req.Status,
		req.DecidedBy, req.DecidedAt, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("leaveRepo.Create: %w", err)
	}
	return nil
}

func (r *leaveRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error) {
	var req domain.LeaveRequest
	err := r.db.GetContext(ctx, &req, "SELECT * FROM leave_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leaveRepo.GetByID: %w", err)
	}
	return &req, nil
}

func (r *leaveRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.LeaveRequest, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1", employeeID)
	if err != nil {
		return nil, 0, fmt.Errorf("leaveRepo.ListByEmployee count: %w", err)
	}

	var reqs []domain.LeaveRequest
	err = r.db.SelectContext(ctx, &reqs,
		"SELECT * FROM leave_requests WHERE employee_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("leaveRepo.ListByEmployee: %w", err)
	}
	return reqs, total, nil
}

func (r *leaveRepo) ListByStatus(ctx context.Context, status domain.LeaveStatus, offset, limit int) ([]domain.LeaveRequest, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM leave_requests WHERE status = $1", status)
	if err != nil {
		return nil, 0, fmt.Errorf("leaveRepo.ListByStatus count: %w", err)
	}

	var reqs []domain.LeaveRequest
	err = r.db.SelectContext(ctx, &reqs,
		"SELECT * FROM leave_requests WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("leaveRepo.ListByStatus: %w", err)
	}
	return reqs, total, nil
}

func (r *leaveRepo) Update(ctx context.Context, req *domain.LeaveRequest) error {
	req.UpdatedAt = time.Now().UTC()
	query := `UPDATE leave_requests SET status = $1, decided_by = $2, decided_at = $3, updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		req.Status, req.DecidedBy, req.DecidedAt, req.UpdatedAt, req.ID)
	if err != nil {
		return fmt.Errorf("leaveRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
