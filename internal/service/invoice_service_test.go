package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/config"
	"staffdesk/internal/domain"
)

func newTestInvoiceService(emp *domain.Employee, at time.Time) (*invoiceService, *fakeInvoiceRepo, *fakeStorage) {
	invRepo := &fakeInvoiceRepo{}
	storage := newFakeStorage()
	svc := &invoiceService{
		invRepo: invRepo,
		empRepo: newFakeEmployeeRepo(emp),
		storage: storage,
		s3cfg:   &config.S3Config{Bucket: "staffdesk-files", PresignExpiry: 900},
		company: config.CompanyConfig{Name: "StaffDesk Pvt Ltd", Email: "billing@staffdesk.in"},
		now:     func() time.Time { return at },
	}
	return svc, invRepo, storage
}

func invoiceEmployee() *domain.Employee {
	return &domain.Employee{
		ID:        uuid.New(),
		EmpCode:   "EMP042",
		FullName:  "Ravi Kumar",
		UPIHandle: "ravi.kumar@okhdfcbank",
		IsActive:  true,
	}
}

func TestExtract(t *testing.T) {
	svc, _, _ := newTestInvoiceService(invoiceEmployee(), time.Now().UTC())

	info, err := svc.Extract(context.Background(), "upi://pay?pa=ravi.kumar@okhdfcbank&pn=Ravi&am=2500.00")
	require.NoError(t, err)
	assert.Equal(t, "ravi.kumar@okhdfcbank", info.PayeeID)
	assert.InDelta(t, 2500.00, info.Amount, 0.001)
}

func TestExtract_NothingFound(t *testing.T) {
	svc, _, _ := newTestInvoiceService(invoiceEmployee(), time.Now().UTC())

	_, err := svc.Extract(context.Background(), "just some words")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate(t *testing.T) {
	emp := invoiceEmployee()
	at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	svc, invRepo, storage := newTestInvoiceService(emp, at)

	userID := uuid.New()
	result, err := svc.Generate(context.Background(), GenerateInvoiceInput{
		EmployeeID:   emp.ID,
		CustomerName: "Acme Traders",
		Items: []InvoiceLineInput{
			{Name: "Consulting", Quantity: 10, UnitPrice: 2500, TaxPercent: 18},
		},
		CreatedBy: userID,
	})
	require.NoError(t, err)

	require.Len(t, invRepo.created, 1)
	inv := invRepo.created[0]
	assert.Equal(t, domain.InvoiceGenerated, inv.Status)
	assert.Equal(t, "Acme Traders", inv.Customer)
	assert.Equal(t, userID, inv.CreatedBy)
	// 10 * 2500 plus 18% tax
	assert.InDelta(t, 29500.00, inv.TotalAmount, 0.001)
	// Number synthesized from the emp code and date when none is given.
	assert.Contains(t, inv.Number, "EMP042")

	// PDF landed under the employee's prefix.
	pdf, err := storage.Download(context.Background(), "staffdesk-files", inv.S3Key)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	assert.Contains(t, result.DownloadURL, inv.S3Key)
}

func TestGenerate_NoLines(t *testing.T) {
	emp := invoiceEmployee()
	svc, _, _ := newTestInvoiceService(emp, time.Now().UTC())

	_, err := svc.Generate(context.Background(), GenerateInvoiceInput{
		EmployeeID:   emp.ID,
		CustomerName: "Acme Traders",
	})
	assert.ErrorIs(t, err, domain.ErrNoLineItems)
}

func TestGenerate_TotalOverride(t *testing.T) {
	emp := invoiceEmployee()
	svc, invRepo, _ := newTestInvoiceService(emp, time.Now().UTC())

	_, err := svc.Generate(context.Background(), GenerateInvoiceInput{
		EmployeeID:       emp.ID,
		CustomerName:     "Acme Traders",
		QuickDescription: "Retainer",
		QuickQuantity:    1,
		QuickUnitPrice:   10000,
		TotalAmount:      "9999.99",
	})
	require.NoError(t, err)
	require.Len(t, invRepo.created, 1)
	assert.InDelta(t, 9999.99, invRepo.created[0].TotalAmount, 0.001)
}

func TestGenerate_UploadFailure(t *testing.T) {
	emp := invoiceEmployee()
	svc, invRepo, storage := newTestInvoiceService(emp, time.Now().UTC())
	storage.failing = true

	_, err := svc.Generate(context.Background(), GenerateInvoiceInput{
		EmployeeID:       emp.ID,
		CustomerName:     "Acme Traders",
		QuickDescription: "Retainer",
		QuickQuantity:    1,
		QuickUnitPrice:   10000,
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Empty(t, invRepo.created)
}

func TestExportCSV(t *testing.T) {
	emp := invoiceEmployee()
	svc, _, _ := newTestInvoiceService(emp, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		_, err := svc.Generate(context.Background(), GenerateInvoiceInput{
			EmployeeID:       emp.ID,
			CustomerName:     "Acme Traders",
			QuickDescription: "Retainer",
			QuickQuantity:    1,
			QuickUnitPrice:   1000,
		})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	data := bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 invoices
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "EMP042", rows[1][1])
	assert.Equal(t, "Acme Traders", rows[1][2])
}
