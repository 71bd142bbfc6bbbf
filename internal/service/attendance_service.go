package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
	"staffdesk/internal/xlsxexport"
)

// MarkAttendanceInput is the DTO for manual attendance marking.
type MarkAttendanceInput struct {
	EmployeeID uuid.UUID               `json:"employee_id" binding:"required"`
	Day        time.Time               `json:"day" binding:"required"`
	Status     domain.AttendanceStatus `json:"status" binding:"required,oneof=present absent half_day on_leave holiday"`
}

// AttendanceService defines the attendance tracking contract.
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error)
	CheckOut(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error)
	Mark(ctx context.Context, input MarkAttendanceInput) (*domain.Attendance, error)
	ListByEmployeeMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]domain.Attendance, error)
	ListByDay(ctx context.Context, day time.Time, offset, limit int) ([]domain.Attendance, int, error)
	ExportMonthXLSX(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]byte, error)
}

type attendanceService struct {
	attRepo port.AttendanceRepository
	empRepo port.EmployeeRepository
	now     func() time.Time
}

// NewAttendanceService creates a new AttendanceService implementation.
func NewAttendanceService(attRepo port.AttendanceRepository, empRepo port.EmployeeRepository) AttendanceService {
	return &attendanceService{
		attRepo: attRepo,
		empRepo: empRepo,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *attendanceService) CheckIn(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, domain.ErrEmployeeInactive
	}

	now := s.now()
	day := truncateToDay(now)

	existing, err := s.attRepo.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("attendance.CheckIn: %w", err)
	}
	if existing != nil && existing.CheckIn != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}

	if existing != nil {
		existing.CheckIn = &now
		existing.Status = domain.AttendancePresent
		if err := s.attRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	att := &domain.Attendance{
		EmployeeID: employeeID,
		Day:        day,
		CheckIn:    &now,
		Status:     domain.AttendancePresent,
	}
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error) {
	now := s.now()
	day := truncateToDay(now)

	att, err := s.attRepo.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotCheckedIn
		}
		return nil, fmt.Errorf("attendance.CheckOut: %w", err)
	}
	if att.CheckIn == nil {
		return nil, domain.ErrNotCheckedIn
	}

	att.CheckOut = &now

	// Less than four hours on the clock counts as a half day.
	if now.Sub(*att.CheckIn) < 4*time.Hour {
		att.Status = domain.AttendanceHalfDay
	}

	if err := s.attRepo.Update(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) Mark(ctx context.Context, input MarkAttendanceInput) (*domain.Attendance, error) {
	if _, err := s.empRepo.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	day := truncateToDay(input.Day)

	existing, err := s.attRepo.GetByEmployeeAndDay(ctx, input.EmployeeID, day)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("attendance.Mark: %w", err)
	}

	if existing != nil {
		existing.Status = input.Status
		if err := s.attRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	att := &domain.Attendance{
		EmployeeID: input.EmployeeID,
		Day:        day,
		Status:     input.Status,
	}
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) ListByEmployeeMonth(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]domain.Attendance, error) {
	return s.attRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
}

func (s *attendanceService) ListByDay(ctx context.Context, day time.Time, offset, limit int) ([]domain.Attendance, int, error) {
	return s.attRepo.ListByDay(ctx, truncateToDay(day), offset, limit)
}

func (s *attendanceService) ExportMonthXLSX(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) ([]byte, error) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	records, err := s.attRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}
	return xlsxexport.AttendanceSheet(emp, records, year, month)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
