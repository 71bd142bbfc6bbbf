package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"staffdesk/internal/domain"
	"staffdesk/internal/invoice"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for the invoice register.
var columns = []string{
	"Invoice Number",
	"Employee Code",
	"Customer",
	"Customer GSTIN",
	"Invoice Date",
	"Due Date",
	"Line Item Count",
	"Total Amount",
	"Status",
	"Created At",
}

// Writer wraps csv.Writer for exporting the invoice register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the register header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoice records to CSV rows and writes
// them. empCodes maps employee IDs to their emp codes; unknown IDs leave the
// column empty.
func (w *Writer) WriteInvoices(invs []domain.Invoice, empCodes map[string]string) error {
	for i := range invs {
		row := invoiceToRow(&invs[i], empCodes)
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// invoiceToRow converts a single invoice record to a string slice. Record
// columns are always filled; draft-derived columns are left empty when the
// stored draft JSON is missing or invalid.
func invoiceToRow(inv *domain.Invoice, empCodes map[string]string) []string {
	row := make([]string, len(columns))

	row[0] = inv.Number
	row[1] = empCodes[inv.EmployeeID.String()]
	row[2] = inv.Customer
	row[7] = formatMoney(inv.TotalAmount)
	row[8] = string(inv.Status)
	row[9] = inv.CreatedAt.Format(time.RFC3339)

	if len(inv.Draft) == 0 {
		return row
	}

	var d invoice.Draft
	if err := json.Unmarshal(inv.Draft, &d); err != nil {
		return row
	}

	row[3] = d.Customer.GSTIN
	row[4] = d.InvoiceDate.Format("2006-01-02")
	if d.DueDate != nil {
		row[5] = d.DueDate.Format("2006-01-02")
	}
	row[6] = strconv.Itoa(len(d.Rows()))

	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
