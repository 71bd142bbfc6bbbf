package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/config"
	"staffdesk/internal/domain"
	"staffdesk/internal/port"
	"staffdesk/internal/salary"
)

// SetStructureInput is the DTO for salary structure upserts.
type SetStructureInput struct {
	AnnualCTC       float64 `json:"annual_ctc" binding:"required,gt=0"`
	BasicPercent    float64 `json:"basic_percent" binding:"required,gt=0,lte=100"`
	HRAPercent      float64 `json:"hra_percent" binding:"gte=0,lte=100"`
	DAPercent       float64 `json:"da_percent" binding:"gte=0,lte=100"`
	PFPercent       float64 `json:"pf_percent" binding:"gte=0,lte=100"`
	ESIPercent      float64 `json:"esi_percent" binding:"gte=0,lte=100"`
	ProfessionalTax float64 `json:"professional_tax" binding:"gte=0"`
}

// GenerateSlipInput is the DTO for payslip generation requests.
type GenerateSlipInput struct {
	EmployeeID  uuid.UUID `json:"employee_id" binding:"required"`
	Year        int       `json:"year" binding:"required,min=2000"`
	Month       int       `json:"month" binding:"required,min=1,max=12"`
	WorkingDays int       `json:"working_days" binding:"required,min=1,max=31"`
	GeneratedBy uuid.UUID `json:"-"`
}

// SlipResult pairs a generated slip record with its download URL.
type SlipResult struct {
	Slip        *domain.SalarySlip `json:"slip"`
	DownloadURL string             `json:"download_url"`
}

// SalaryService defines the salary management contract.
type SalaryService interface {
	SetStructure(ctx context.Context, employeeID uuid.UUID, input SetStructureInput) (*domain.SalaryStructure, error)
	GetStructure(ctx context.Context, employeeID uuid.UUID) (*domain.SalaryStructure, error)
	GenerateSlip(ctx context.Context, input GenerateSlipInput) (*SlipResult, error)
	ListSlips(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.SalarySlip, int, error)
	GetSlipURL(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (string, error)
}

type salaryService struct {
	salaryRepo port.SalaryRepository
	empRepo    port.EmployeeRepository
	attRepo    port.AttendanceRepository
	storage    port.ObjectStorage
	cfg        *config.S3Config
}

// NewSalaryService creates a new SalaryService implementation.
func NewSalaryService(
	salaryRepo port.SalaryRepository,
	empRepo port.EmployeeRepository,
	attRepo port.AttendanceRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) SalaryService {
	return &salaryService{
		salaryRepo: salaryRepo,
		empRepo:    empRepo,
		attRepo:    attRepo,
		storage:    storage,
		cfg:        cfg,
	}
}

func (s *salaryService) SetStructure(ctx context.Context, employeeID uuid.UUID, input SetStructureInput) (*domain.SalaryStructure, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	structure := &domain.SalaryStructure{
		EmployeeID:      employeeID,
		AnnualCTC:       input.AnnualCTC,
		BasicPercent:    input.BasicPercent,
		HRAPercent:      input.HRAPercent,
		DAPercent:       input.DAPercent,
		PFPercent:       input.PFPercent,
		ESIPercent:      input.ESIPercent,
		ProfessionalTax: input.ProfessionalTax,
	}
	if err := s.salaryRepo.UpsertStructure(ctx, structure); err != nil {
		return nil, err
	}
	return structure, nil
}

func (s *salaryService) GetStructure(ctx context.Context, employeeID uuid.UUID) (*domain.SalaryStructure, error) {
	return s.salaryRepo.GetStructure(ctx, employeeID)
}

func (s *salaryService) GenerateSlip(ctx context.Context, input GenerateSlipInput) (*SlipResult, error) {
	emp, err := s.empRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	month := time.Month(input.Month)

	if _, err := s.salaryRepo.GetSlip(ctx, input.EmployeeID, input.Year, month); err == nil {
		return nil, domain.ErrSlipAlreadyGenerated
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("salary.GenerateSlip: %w", err)
	}

	structure, err := s.salaryRepo.GetStructure(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	unpaidLeave, err := s.attRepo.CountByStatus(ctx, input.EmployeeID, input.Year, month, domain.AttendanceAbsent)
	if err != nil {
		return nil, err
	}

	breakdown := salary.Compute(structure, input.WorkingDays, unpaidLeave)

	pdfData, err := salary.Payslip(emp, breakdown, month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("rendering payslip: %w", err)
	}

	s3Key := fmt.Sprintf("payslips/%s/%d-%02d.pdf", emp.EmpCode, input.Year, input.Month)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(pdfData),
		ContentType: "application/pdf",
		Size:        int64(len(pdfData)),
	})
	if err != nil {
		log.Printf("salaryService.GenerateSlip: upload failed for %s: %v", s3Key, err)
		return nil, domain.ErrUploadFailed
	}

	slip := &domain.SalarySlip{
		EmployeeID:  input.EmployeeID,
		Month:       input.Month,
		Year:        input.Year,
		GrossPay:    breakdown.MonthlyGross,
		Deductions:  breakdown.TotalDeductions,
		NetPay:      breakdown.NetPay,
		S3Key:       s3Key,
		GeneratedBy: input.GeneratedBy,
	}
	if err := s.salaryRepo.CreateSlip(ctx, slip); err != nil {
		return nil, err
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, s3Key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning slip URL: %w", err)
	}

	return &SlipResult{Slip: slip, DownloadURL: url}, nil
}

func (s *salaryService) ListSlips(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.SalarySlip, int, error) {
	return s.salaryRepo.ListSlipsByEmployee(ctx, employeeID, offset, limit)
}

func (s *salaryService) GetSlipURL(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (string, error) {
	slip, err := s.salaryRepo.GetSlip(ctx, employeeID, year, month)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, slip.S3Key, s.cfg.PresignExpiry)
}
