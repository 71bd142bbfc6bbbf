package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

// RequestLeaveInput is the DTO for leave requests.
type RequestLeaveInput struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	FromDate   time.Time `json:"from_date" binding:"required"`
	ToDate     time.Time `json:"to_date" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
}

// DecideLeaveInput is the DTO for leave approval decisions.
type DecideLeaveInput struct {
	Approve   bool      `json:"approve"`
	DecidedBy uuid.UUID `json:"-"`
}

// LeaveService defines the leave management contract.
type LeaveService interface {
	Request(ctx context.Context, input RequestLeaveInput) (*domain.LeaveRequest, error)
	Decide(ctx context.Context, id uuid.UUID, input DecideLeaveInput) (*domain.LeaveRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.LeaveRequest, int, error)
	ListPending(ctx context.Context, offset, limit int) ([]domain.LeaveRequest, int, error)
}

type leaveService struct {
	leaveRepo port.LeaveRepository
	empRepo   port.EmployeeRepository
	attRepo   port.AttendanceRepository
	now       func() time.Time
}

// NewLeaveService creates a new LeaveService implementation.
func NewLeaveService(leaveRepo port.LeaveRepository, empRepo port.EmployeeRepository, attRepo port.AttendanceRepository) LeaveService {
	return &leaveService{
		leaveRepo: leaveRepo,
		empRepo:   empRepo,
		attRepo:   attRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *leaveService) Request(ctx context.Context, input RequestLeaveInput) (*domain.LeaveRequest, error) {
	emp, err := s.empRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, domain.ErrEmployeeInactive
	}
	if input.ToDate.Before(input.FromDate) {
		return nil, domain.ErrInvalidLeaveRange
	}

	req := &domain.LeaveRequest{
		EmployeeID: input.EmployeeID,
		FromDate:   truncateToDay(input.FromDate),
		ToDate:     truncateToDay(input.ToDate),
		Reason:     input.Reason,
		Status:     domain.LeavePending,
	}
	if err := s.leaveRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *leaveService) Decide(ctx context.Context, id uuid.UUID, input DecideLeaveInput) (*domain.LeaveRequest, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.LeavePending {
		return nil, domain.ErrLeaveAlreadyDecided
	}

	now := s.now()
	req.DecidedBy = &input.DecidedBy
	req.DecidedAt = &now
	if input.Approve {
		req.Status = domain.LeaveApproved
	} else {
		req.Status = domain.LeaveRejected
	}

	if err := s.leaveRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	// Approved leave marks each covered day so payroll sees it.
	if req.Status == domain.LeaveApproved {
		for day := req.FromDate; !day.After(req.ToDate); day = day.AddDate(0, 0, 1) {
			s.markLeaveDay(ctx, req.EmployeeID, day)
		}
	}

	return req, nil
}

func (s *leaveService) markLeaveDay(ctx context.Context, employeeID uuid.UUID, day time.Time) {
	existing, err := s.attRepo.GetByEmployeeAndDay(ctx, employeeID, day)
	if err == nil {
		existing.Status = domain.AttendanceOnLeave
		_ = s.attRepo.Update(ctx, existing)
		return
	}
	_ = s.attRepo.Create(ctx, &domain.Attendance{
		EmployeeID: employeeID,
		Day:        day,
		Status:     domain.AttendanceOnLeave,
	})
}

func (s *leaveService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

func (s *leaveService) ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.LeaveRequest, int, error) {
	return s.leaveRepo.ListByEmployee(ctx, employeeID, offset, limit)
}

func (s *leaveService) ListPending(ctx context.Context, offset, limit int) ([]domain.LeaveRequest, int, error) {
	return s.leaveRepo.ListByStatus(ctx, domain.LeavePending, offset, limit)
}
