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

type salaryRepo struct {
	db *sqlx.DB
}

// NewSalaryRepo creates a new PostgreSQL-backed SalaryRepository.
func NewSalaryRepo(db *sqlx.DB) port.SalaryRepository {
	return &salaryRepo{db: db}
}

func (r *salaryRepo) UpsertStructure(ctx context.Context, s *domain.SalaryStructure) error {
	now := time.Now().UTC()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	query := `INSERT INTO salary_structures (id, employee_id, annual_ctc, basic_percent, hra_percent,
		da_percent, pf_percent, esi_percent, professional_tax, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id) DO UPDATE SET
			annual_ctc = EXCLUDED.annual_ctc,
			basic_percent = EXCLUDED.basic_percent,
			hra_percent = EXCLUDED.hra_percent,
			da_percent = EXCLUDED.da_percent,
			pf_percent = EXCLUDED.pf_percent,
			esi_percent = EXCLUDED.esi_percent,
			professional_tax = EXCLUDED.professional_tax,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.EmployeeID, s.AnnualCTC, s.BasicPercent, s.HRAPercent, s.DAPercent,
		s.PFPercent, s.ESIPercent, s.ProfessionalTax, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("salaryRepo.UpsertStructure: %w", err)
	}
	return nil
}

func (r *salaryRepo) GetStructure(ctx context.Context, employeeID uuid.UUID) (*domain.SalaryStructure, error) {
	var s domain.SalaryStructure
	err := r.db.GetContext(ctx, &s,
		"SELECT * FROM salary_structures WHERE employee_id = $1", employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoSalaryStructure
		}
		return nil, fmt.Errorf("salaryRepo.GetStructure: %w", err)
	}
	return &s, nil
}

func (r *salaryRepo) CreateSlip(ctx context.Context, slip *domain.SalarySlip) error {
	slip.ID = uuid.New()
	slip.CreatedAt = time.Now().UTC()

	query := `INSERT INTO salary_slips (id, employee_id, month, year, gross_pay, deductions, net_pay,
		s3_key, generated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		slip.ID, slip.EmployeeID, slip.Month, slip.Year, slip.GrossPay, slip.Deductions,
		slip.NetPay, slip.S3Key, slip.GeneratedBy, slip.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrSlipAlreadyGenerated
		}
		return fmt.Errorf("salaryRepo.CreateSlip: %w", err)
	}
	return nil
}

func (r *salaryRepo) GetSlip(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*domain.SalarySlip, error) {
	var slip domain.SalarySlip
	err := r.db.GetContext(ctx, &slip,
		"SELECT * FROM salary_slips WHERE employee_id = $1 AND year = $2 AND month = $3",
		employeeID, year, int(month))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("salaryRepo.GetSlip: %w", err)
	}
	return &slip, nil
}

func (r *salaryRepo) ListSlipsByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.SalarySlip, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM salary_slips WHERE employee_id = $1", employeeID)
	if err != nil {
		return nil, 0, fmt.Errorf("salaryRepo.ListSlipsByEmployee count: %w", err)
	}

	var slips []domain.SalarySlip
	err = r.db.SelectContext(ctx, &slips,
		"SELECT * FROM salary_slips WHERE employee_id = $1 ORDER BY year DESC, month DESC LIMIT $2 OFFSET $3",
		employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("salaryRepo.ListSlipsByEmployee: %w", err)
	}
	return slips, total, nil
}
