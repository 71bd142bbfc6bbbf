package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
)

// SalaryRepository defines the contract for salary structure and slip persistence.
type SalaryRepository interface {
	UpsertStructure(ctx context.Context, s *domain.SalaryStructure) error
	GetStructure(ctx context.Context, employeeID uuid.UUID) (*domain.SalaryStructure, error)

	CreateSlip(ctx context.Context, slip *domain.SalarySlip) error
	GetSlip(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*domain.SalarySlip, error)
	ListSlipsByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.SalarySlip, int, error)
}
