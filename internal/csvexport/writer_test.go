package csvexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/domain"
	"staffdesk/internal/invoice"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 10)
	assert.Equal(t, "Invoice Number", row[0])
	assert.Equal(t, "Created At", row[9])
}

func TestWriteInvoices(t *testing.T) {
	empID := uuid.New()
	due := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)
	draft := invoice.Draft{
		Number:      "INV-2025-0042",
		InvoiceDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		DueDate:     &due,
		Customer:    invoice.Party{Name: "Acme Traders", GSTIN: "29AABCU9603R1ZM"},
		Items: []invoice.LineItem{
			{Name: "Consulting", Quantity: 10, UnitPrice: 2500},
			{Name: "Support", Quantity: 1, UnitPrice: 5000},
		},
	}
	raw, err := json.Marshal(draft)
	require.NoError(t, err)

	invs := []domain.Invoice{
		{
			EmployeeID:  empID,
			Number:      "INV-2025-0042",
			Customer:    "Acme Traders",
			TotalAmount: 30000,
			Draft:       raw,
			Status:      domain.InvoiceGenerated,
			CreatedAt:   time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteInvoices(invs, map[string]string{empID.String(): "EMP042"}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "INV-2025-0042", row[0])
	assert.Equal(t, "EMP042", row[1])
	assert.Equal(t, "Acme Traders", row[2])
	assert.Equal(t, "29AABCU9603R1ZM", row[3])
	assert.Equal(t, "2025-03-14", row[4])
	assert.Equal(t, "2025-04-13", row[5])
	assert.Equal(t, "2", row[6])
	assert.Equal(t, "30000.00", row[7])
	assert.Equal(t, "generated", row[8])
}

func TestWriteInvoices_InvalidDraft(t *testing.T) {
	invs := []domain.Invoice{
		{Number: "INV-1", Customer: "X", TotalAmount: 100, Draft: []byte("not json")},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInvoices(invs, nil))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "INV-1", rows[0][0])
	assert.Empty(t, rows[0][3])
	assert.Empty(t, rows[0][6])
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Q4 2024 Invoices", "Q4_2024_Invoices"},
		{"weird///name!!!", "weird_name"},
		{"__already__clean__", "already_clean"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in))
	}
}
