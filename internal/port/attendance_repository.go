package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
)

// AttendanceRepository defines the contract for attendance persistence.
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	GetByEmployeeAndDay(ctx context.Context, employeeID uuid.UUID, day time.Time) (*domain.Attendance, error)
	Update(ctx context.Context, att *domain.Attendance) error
	ListByEmployeeMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]domain.Attendance, error)
	ListByDay(ctx context.Context, day time.Time, offset, limit int) ([]domain.Attendance, int, error)
	CountByStatus(ctx context.Context, employeeID uuid.UUID, year int, month time.Month, status domain.AttendanceStatus) (int, error)
}

// LeaveRepository defines the contract for leave request persistence.
type LeaveRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.LeaveRequest, int, error)
	ListByStatus(ctx context.Context, status domain.LeaveStatus, offset, limit int) ([]domain.LeaveRequest, int, error)
	Update(ctx context.Context, req *domain.LeaveRequest) error
}
