package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

type employeeRepo struct {
	db *sqlx.DB
}

// NewEmployeeRepo creates a new PostgreSQL-backed EmployeeRepository.
func NewEmployeeRepo(db *sqlx.DB) port.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = uuid.New()
	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `INSERT INTO employees (id, emp_code, full_name, email, phone, designation, department,
		joined_on, upi_handle, is_active, left_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		emp.ID, emp.EmpCode, emp.FullName, emp.Email, emp.Phone, emp.Designation,
		emp.Department, emp.JoinedOn, emp.UPIHandle, emp.IsActive, emp.LeftOn,
		emp.CreatedAt, emp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			if strings.Contains(err.Error(), "emp_code") {
				return domain.ErrDuplicateEmpCode
			}
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("employeeRepo.Create: %w", err)
	}
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.GetContext(ctx, &emp, "SELECT * FROM employees WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByID: %w", err)
	}
	return &emp, nil
}

func (r *employeeRepo) GetByEmpCode(ctx context.Context, code string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.GetContext(ctx, &emp, "SELECT * FROM employees WHERE emp_code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByEmpCode: %w", err)
	}
	return &emp, nil
}

func (r *employeeRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Employee, int, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active = true"
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM employees"+where)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.List count: %w", err)
	}

	var emps []domain.Employee
	err = r.db.SelectContext(ctx, &emps,
		"SELECT * FROM employees"+where+" ORDER BY emp_code LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.List: %w", err)
	}
	return emps, total, nil
}

func (r *employeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	emp.UpdatedAt = time.Now().UTC()
	query := `UPDATE employees SET emp_code = $1, full_name = $2, email = $3, phone = $4,
		designation = $5, department = $6, joined_on = $7, upi_handle = $8, is_active = $9,
		left_on = $10, updated_at = $11
		WHERE id = $12`
	result, err := r.db.ExecContext(ctx, query,
		emp.EmpCode, emp.FullName, emp.Email, emp.Phone, emp.Designation, emp.Department,
		emp.JoinedOn, emp.UPIHandle, emp.IsActive, emp.LeftOn, emp.UpdatedAt, emp.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			if strings.Contains(err.Error(), "emp_code") {
				return domain.ErrDuplicateEmpCode
			}
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("employeeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE employees SET is_active = false, left_on = NOW(), updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("employeeRepo.Deactivate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
