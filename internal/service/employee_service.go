package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

// CreateEmployeeInput is the DTO for employee creation requests.
type CreateEmployeeInput struct {
	EmpCode     string    `json:"emp_code" binding:"required"`
	FullName    string    `json:"full_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone"`
	Designation string    `json:"designation"`
	Department  string    `json:"department"`
	JoinedOn    time.Time `json:"joined_on" binding:"required"`
	UPIHandle   string    `json:"upi_handle"`
}

// UpdateEmployeeInput is the DTO for employee update requests.
type UpdateEmployeeInput struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Designation *string `json:"designation"`
	Department  *string `json:"department"`
	UPIHandle   *string `json:"upi_handle"`
}

// EmployeeService defines the employee management contract.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByEmpCode(ctx context.Context, code string) (*domain.Employee, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Employee, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*domain.Employee, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type employeeService struct {
	empRepo port.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService implementation.
func NewEmployeeService(empRepo port.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error) {
	emp := &domain.Employee{
		EmpCode:     input.EmpCode,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Designation: input.Designation,
		Department:  input.Department,
		JoinedOn:    input.JoinedOn,
		UPIHandle:   input.UPIHandle,
		IsActive:    true,
	}
	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) GetByEmpCode(ctx context.Context, code string) (*domain.Employee, error) {
	return s.empRepo.GetByEmpCode(ctx, code)
}

func (s *employeeService) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Employee, int, error) {
	return s.empRepo.List(ctx, activeOnly, offset, limit)
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		emp.FullName = *input.FullName
	}
	if input.Email != nil {
		emp.Email = *input.Email
	}
	if input.Phone != nil {
		emp.Phone = *input.Phone
	}
	if input.Designation != nil {
		emp.Designation = *input.Designation
	}
	if input.Department != nil {
		emp.Department = *input.Department
	}
	if input.UPIHandle != nil {
		emp.UPIHandle = *input.UPIHandle
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.empRepo.Deactivate(ctx, id)
}
