package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/domain"
	"staffdesk/internal/invoice"
)

func sampleDraft() invoice.Draft {
	return invoice.Draft{
		EmployeeCode: "EMP042",
		InvoiceDate:  time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		Company:      invoice.Party{Name: "Acme Traders", Address: "14 MG Road, Pune", Email: "billing@acme.in", GSTIN: "27ABCDE1234F1Z5"},
		Customer:     invoice.Party{Name: "Bharat Supplies", Address: "2 Park Street, Kolkata"},
		Items: []invoice.LineItem{
			{Name: "Steel brackets", Quantity: 10, UnitPrice: 45.50, TaxPercent: 18},
			{Name: "Delivery charge", Quantity: 1, UnitPrice: 200, Shipping: 50},
		},
		UID: "acme@oksbi",
		Bank: invoice.BankDetails{
			AccountName:   "Acme Traders",
			AccountNumber: "00123456789",
			IFSC:          "SBIN0001234",
			BankName:      "State Bank of India",
		},
	}
}

func TestCompose_ProducesPDF(t *testing.T) {
	data, err := invoice.Compose(sampleDraft())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
	assert.Greater(t, len(data), 1000)
}

func TestCompose_RejectsEmptyDraft(t *testing.T) {
	tests := map[string]invoice.Draft{
		"nothing":            {},
		"quick_missing_qty":  {QuickDescription: "Widget", QuickUnitPrice: 50},
		"quick_zero_price":   {QuickDescription: "Widget", QuickQuantity: 2},
		"quick_missing_desc": {QuickQuantity: 2, QuickUnitPrice: 50},
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			data, err := invoice.Compose(d)
			assert.ErrorIs(t, err, domain.ErrNoLineItems)
			assert.Nil(t, data)
		})
	}
}

func TestCompose_QuickEntryOnly(t *testing.T) {
	d := invoice.Draft{
		EmployeeCode:     "EMP007",
		InvoiceDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		QuickDescription: "Widget",
		QuickQuantity:    2,
		QuickUnitPrice:   50,
		QuickDiscount:    10,
		QuickTax:         18,
		QuickShipping:    5,
	}
	data, err := invoice.Compose(d)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestCompose_CorruptImagesAreSkipped(t *testing.T) {
	d := sampleDraft()
	d.LogoPNG = []byte("definitely not a png")
	d.StampPNG = []byte{0x01, 0x02}
	data, err := invoice.Compose(d)
	require.NoError(t, err, "corrupt assets must not abort generation")
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestCompose_ManyRowsStillSinglePage(t *testing.T) {
	d := sampleDraft()
	d.Items = nil
	for i := 0; i < 30; i++ {
		d.Items = append(d.Items, invoice.LineItem{Name: "Row", Quantity: 1, UnitPrice: 10})
	}
	data, err := invoice.Compose(d)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestSynthesizeNumber(t *testing.T) {
	at := time.Date(2025, 3, 14, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, "EMP042-250314103045", invoice.SynthesizeNumber("EMP042", at))
	assert.Equal(t, "INV-250314103045", invoice.SynthesizeNumber("", at))
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 45, 0, time.UTC)

	d := sampleDraft()
	assert.Equal(t, "EMP042_20250314103045_invoice.pdf", invoice.FileName(&d, now))

	d.EmployeeCode = ""
	assert.Equal(t, "Bharat-Supplies_20250314103045_invoice.pdf", invoice.FileName(&d, now))

	d.Customer.Name = ""
	assert.Equal(t, "invoice_20250314103045_invoice.pdf", invoice.FileName(&d, now))
}
