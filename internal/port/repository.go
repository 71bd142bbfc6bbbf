package port

import (
	"context"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
)

// UserRepository defines the contract for dashboard user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployeeRepository defines the contract for employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByEmpCode(ctx context.Context, code string) (*domain.Employee, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Employee, int, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}
