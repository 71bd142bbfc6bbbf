package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/config"
	"staffdesk/internal/csvexport"
	"staffdesk/internal/domain"
	"staffdesk/internal/invoice"
	"staffdesk/internal/port"
	"staffdesk/internal/upi"
)

// ExtractInput is the DTO for payment string extraction requests.
type ExtractInput struct {
	Raw string `json:"raw" binding:"required"`
}

// InvoiceLineInput is one line item on an invoice generation request.
type InvoiceLineInput struct {
	Name       string  `json:"name" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" binding:"required,gt=0"`
	Discount   float64 `json:"discount" binding:"gte=0,lte=100"`
	TaxPercent float64 `json:"tax_percent" binding:"gte=0,lte=100"`
	Shipping   float64 `json:"shipping" binding:"gte=0"`
}

// GenerateInvoiceInput is the DTO for invoice generation requests.
type GenerateInvoiceInput struct {
	EmployeeID    uuid.UUID          `json:"employee_id" binding:"required"`
	Number        string             `json:"number"`
	InvoiceDate   *time.Time         `json:"invoice_date"`
	DueDate       *time.Time         `json:"due_date"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerAddr  string             `json:"customer_address"`
	CustomerEmail string             `json:"customer_email" binding:"omitempty,email"`
	CustomerGSTIN string             `json:"customer_gstin"`
	Items         []InvoiceLineInput `json:"items"`

	QuickDescription string  `json:"quick_description"`
	QuickQuantity    float64 `json:"quick_quantity" binding:"gte=0"`
	QuickUnitPrice   float64 `json:"quick_unit_price" binding:"gte=0"`
	QuickDiscount    float64 `json:"quick_discount" binding:"gte=0,lte=100"`
	QuickTax         float64 `json:"quick_tax" binding:"gte=0,lte=100"`
	QuickShipping    float64 `json:"quick_shipping" binding:"gte=0"`

	TotalAmount string              `json:"total_amount"`
	UID         string              `json:"uid"`
	Bank        invoice.BankDetails `json:"bank"`
	Terms       []string            `json:"terms"`
	Notes       string              `json:"notes"`

	CreatedBy uuid.UUID `json:"-"`
}

// InvoiceResult pairs a persisted invoice with its download URL.
type InvoiceResult struct {
	Invoice     *domain.Invoice `json:"invoice"`
	FileName    string          `json:"file_name"`
	DownloadURL string          `json:"download_url"`
}

// InvoiceService defines the invoice generation contract.
type InvoiceService interface {
	Extract(ctx context.Context, raw string) (*upi.PaymentInfo, error)
	Generate(ctx context.Context, input GenerateInvoiceInput) (*InvoiceResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
	ExportCSV(ctx context.Context, w io.Writer) error
}

type invoiceService struct {
	invRepo port.InvoiceRepository
	empRepo port.EmployeeRepository
	storage port.ObjectStorage
	s3cfg   *config.S3Config
	company config.CompanyConfig
	now     func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invRepo port.InvoiceRepository,
	empRepo port.EmployeeRepository,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
	company config.CompanyConfig,
) InvoiceService {
	return &invoiceService{
		invRepo: invRepo,
		empRepo: empRepo,
		storage: storage,
		s3cfg:   s3cfg,
		company: company,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *invoiceService) Extract(ctx context.Context, raw string) (*upi.PaymentInfo, error) {
	info := upi.Extract(raw)
	if info.Empty() {
		return nil, domain.ErrNotFound
	}
	return &info, nil
}

func (s *invoiceService) Generate(ctx context.Context, input GenerateInvoiceInput) (*InvoiceResult, error) {
	emp, err := s.empRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	draft := s.buildDraft(emp, input, now)

	if !draft.HasLines() {
		return nil, domain.ErrNoLineItems
	}

	pdfData, err := invoice.Compose(draft)
	if err != nil {
		return nil, err
	}

	fileName := invoice.FileName(&draft, now)
	s3Key := fmt.Sprintf("invoices/%s/%s", emp.EmpCode, fileName)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(pdfData),
		ContentType: "application/pdf",
		Size:        int64(len(pdfData)),
	})
	if err != nil {
		log.Printf("invoiceService.Generate: upload failed for %s: %v", s3Key, err)
		return nil, domain.ErrUploadFailed
	}

	draftJSON, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("marshaling draft: %w", err)
	}

	total := grandTotal(draft)

	inv := &domain.Invoice{
		EmployeeID:  input.EmployeeID,
		Number:      draft.Number,
		Customer:    draft.Customer.Name,
		TotalAmount: total,
		Draft:       draftJSON,
		S3Key:       s3Key,
		Status:      domain.InvoiceGenerated,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, s3Key, s.s3cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning invoice URL: %w", err)
	}

	return &InvoiceResult{Invoice: inv, FileName: fileName, DownloadURL: url}, nil
}

func (s *invoiceService) buildDraft(emp *domain.Employee, input GenerateInvoiceInput, now time.Time) invoice.Draft {
	invoiceDate := now
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}

	items := make([]invoice.LineItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, invoice.LineItem{
			Name:            it.Name,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.Discount,
			TaxPercent:      it.TaxPercent,
			Shipping:        it.Shipping,
		})
	}

	uid := input.UID
	if uid == "" {
		uid = emp.UPIHandle
	}

	number := input.Number
	if number == "" {
		number = invoice.SynthesizeNumber(emp.EmpCode, now)
	}

	return invoice.Draft{
		Number:       number,
		EmployeeCode: emp.EmpCode,
		InvoiceDate:  invoiceDate,
		DueDate:      input.DueDate,
		Company: invoice.Party{
			Name:    s.company.Name,
			Address: s.company.Address,
			Email:   s.company.Email,
			GSTIN:   s.company.GSTIN,
		},
		Customer: invoice.Party{
			Name:    input.CustomerName,
			Address: input.CustomerAddr,
			Email:   input.CustomerEmail,
			GSTIN:   input.CustomerGSTIN,
		},
		Items:            items,
		QuickDescription: input.QuickDescription,
		QuickQuantity:    input.QuickQuantity,
		QuickUnitPrice:   input.QuickUnitPrice,
		QuickDiscount:    input.QuickDiscount,
		QuickTax:         input.QuickTax,
		QuickShipping:    input.QuickShipping,
		TotalAmount:      input.TotalAmount,
		UID:              uid,
		Bank:             input.Bank,
		Terms:            input.Terms,
		Notes:            input.Notes,
	}
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invRepo.GetByID(ctx, id)
}

func (s *invoiceService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.invRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, inv.S3Key, s.s3cfg.PresignExpiry)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invRepo.List(ctx, offset, limit)
}

func (s *invoiceService) ListByEmployee(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invRepo.ListByEmployee(ctx, employeeID, offset, limit)
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	return s.invRepo.UpdateStatus(ctx, id, status)
}

// ExportCSV streams the full invoice register to w, paging through the
// repository in batches.
func (s *invoiceService) ExportCSV(ctx context.Context, w io.Writer) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return err
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}

	empCodes := make(map[string]string)
	const batch = 500
	for offset := 0; ; offset += batch {
		invs, _, err := s.invRepo.List(ctx, offset, batch)
		if err != nil {
			return err
		}
		if len(invs) == 0 {
			break
		}

		for _, inv := range invs {
			key := inv.EmployeeID.String()
			if _, ok := empCodes[key]; ok {
				continue
			}
			emp, err := s.empRepo.GetByID(ctx, inv.EmployeeID)
			if err != nil {
				empCodes[key] = ""
				continue
			}
			empCodes[key] = emp.EmpCode
		}

		if err := cw.WriteInvoices(invs, empCodes); err != nil {
			return err
		}
		if len(invs) < batch {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

// grandTotal mirrors the rendered total: the sum of each displayed row total,
// unless a parseable override was supplied.
func grandTotal(d invoice.Draft) float64 {
	if d.TotalAmount != "" {
		if v, err := strconv.ParseFloat(d.TotalAmount, 64); err == nil && v > 0 {
			return invoice.Round2(v)
		}
	}
	var total float64
	for _, row := range d.Rows() {
		total += invoice.ComputeLine(row).Total
	}
	return invoice.Round2(total)
}
