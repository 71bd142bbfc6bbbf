package invoice

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"staffdesk/internal/domain"
	"staffdesk/internal/upi"
)

// A4 portrait, millimetres. The column widths sum to contentWidth exactly.
const (
	pageWidth    = 210.0
	marginX      = 10.0
	marginTop    = 12.0
	contentWidth = pageWidth - 2*marginX

	// Terms are rendered only while the cursor is above this line; beyond it
	// they are omitted. The document is a single fixed page by design.
	termsThresholdY = 248.0
	stampY          = 240.0
	footerY         = 287.0

	qrSide   = 42.0
	logoSide = 28.0
)

var tableCols = []struct {
	head  string
	width float64
	align string
}{
	{"#", 10, "C"},
	{"Item", 56, "L"},
	{"Qty", 14, "C"},
	{"Unit Price", 26, "R"},
	{"Shipping", 22, "R"},
	{"Disc %", 18, "R"},
	{"Tax %", 18, "R"},
	{"Total", 26, "R"},
}

var defaultTerms = []string{
	"Payment is due within 15 days of the invoice date.",
	"Goods once sold will not be taken back or exchanged.",
}

// Compose lays out the draft as a single-page A4 invoice and returns the PDF
// bytes. It fails only when the draft has no printable rows; image embedding
// problems are logged and the affected asset is skipped.
func Compose(d Draft) ([]byte, error) {
	if !d.HasLines() {
		return nil, domain.ErrNoLineItems
	}
	if d.Number == "" {
		d.Number = SynthesizeNumber(d.EmployeeCode, d.InvoiceDate)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, marginTop, marginX)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if len(d.LogoPNG) > 0 {
		embedPNG(pdf, "logo", d.LogoPNG, pageWidth-marginX-logoSide, marginTop, logoSide, 0)
	}

	drawHeader(pdf, &d)
	drawParties(pdf, &d)
	grand := drawItemsTable(pdf, &d)
	drawAmountInWords(pdf, grand)
	drawBankAndQR(pdf, &d, grand)
	drawTerms(pdf, &d)

	if len(d.StampPNG) > 0 && pdf.GetY() < stampY {
		embedPNG(pdf, "stamp", d.StampPNG, pageWidth-marginX-32, stampY, 30, 0)
	}

	pdf.SetY(footerY)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(contentWidth, 5, "This is a computer generated invoice and does not require a signature.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice.Compose: %w", err)
	}
	return buf.Bytes(), nil
}

// SynthesizeNumber builds an invoice number from the employee code and a
// time-derived suffix.
func SynthesizeNumber(empCode string, at time.Time) string {
	if empCode == "" {
		empCode = "INV"
	}
	if at.IsZero() {
		at = time.Now()
	}
	return fmt.Sprintf("%s-%s", empCode, at.Format("060102150405"))
}

// FileName returns the download name for a generated invoice:
// <employeeIdOrCustomer>_<timestamp>_invoice.pdf.
func FileName(d *Draft, now time.Time) string {
	who := d.EmployeeCode
	if who == "" {
		who = strings.ReplaceAll(strings.TrimSpace(d.Customer.Name), " ", "-")
	}
	if who == "" {
		who = "invoice"
	}
	return fmt.Sprintf("%s_%s_invoice.pdf", who, now.Format("20060102150405"))
}

func drawHeader(pdf *gofpdf.Fpdf, d *Draft) {
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(contentWidth, 12, "INVOICE", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(contentWidth, 5, "Invoice No: "+d.Number, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 5, "Date: "+d.InvoiceDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	if d.DueDate != nil {
		pdf.CellFormat(contentWidth, 5, "Due Date: "+d.DueDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

// drawParties renders the billed-by / billed-to columns with independent row
// cursors and resumes below the taller of the two.
func drawParties(pdf *gofpdf.Fpdf, d *Draft) {
	colWidth := contentWidth/2 - 5
	startY := pdf.GetY()

	leftEnd := drawParty(pdf, marginX, startY, colWidth, "Billed By", &d.Company)
	rightEnd := drawParty(pdf, marginX+contentWidth/2+5, startY, colWidth, "Billed To", &d.Customer)

	if rightEnd > leftEnd {
		leftEnd = rightEnd
	}
	pdf.SetY(leftEnd + 5)
}

func drawParty(pdf *gofpdf.Fpdf, x, y, w float64, title string, p *Party) float64 {
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(w, 6, title, "", 0, "L", false, 0, "")
	y += 7

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(60, 60, 60)
	for _, line := range []string{p.Name, p.Address, p.Email, p.Phone} {
		if line == "" {
			continue
		}
		pdf.SetXY(x, y)
		pdf.MultiCell(w, 4.5, line, "", "L", false)
		y = pdf.GetY()
	}
	if p.GSTIN != "" {
		pdf.SetXY(x, y)
		pdf.CellFormat(w, 4.5, "GSTIN: "+p.GSTIN, "", 0, "L", false, 0, "")
		y += 4.5
	}
	return y
}

// drawItemsTable renders the fixed-width eight column table and returns the
// grand total accumulated from the displayed (already rounded) row totals, so
// the printed total always equals the sum of the printed rows.
func drawItemsTable(pdf *gofpdf.Fpdf, d *Draft) float64 {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(33, 37, 41)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range tableCols {
		pdf.CellFormat(col.width, 8, col.head, "", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(33, 37, 41)

	var grand float64
	for i, row := range d.Rows() {
		// Stored totals may be stale; the displayed figure is always
		// recomputed from the raw inputs.
		row = ComputeLine(row)
		grand += row.Total

		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		cells := []string{
			strconv.Itoa(i + 1),
			row.Name,
			trimFloat(row.Quantity),
			money(row.UnitPrice),
			money(row.Shipping),
			fmt.Sprintf("%.2f", row.DiscountPercent),
			fmt.Sprintf("%.2f", row.TaxPercent),
			money(row.Total),
		}
		for j, col := range tableCols {
			pdf.CellFormat(col.width, 7, cells[j], "", 0, col.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(marginX, pdf.GetY(), marginX+contentWidth, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Arial", "B", 10)
	labelWidth := contentWidth - tableCols[len(tableCols)-1].width
	pdf.CellFormat(labelWidth, 8, "Grand Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(tableCols[len(tableCols)-1].width, 8, money(grand), "", 1, "R", false, 0, "")
	return grand
}

func drawAmountInWords(pdf *gofpdf.Fpdf, grand float64) {
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(contentWidth, 5, "Amount in words: "+AmountInWords(grand), "", "L", false)
	pdf.Ln(3)
}

// drawBankAndQR renders the static bank fields on the left and a scannable
// payment code on the right. The encoded amount prefers the serialized draft
// total and falls back to the accumulated grand total when it is blank.
func drawBankAndQR(pdf *gofpdf.Fpdf, d *Draft, grand float64) {
	startY := pdf.GetY()

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(contentWidth/2, 6, "Bank Details", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(60, 60, 60)
	rows := []struct{ label, value string }{
		{"Account Name", d.Bank.AccountName},
		{"Account No", d.Bank.AccountNumber},
		{"IFSC", d.Bank.IFSC},
		{"Bank", d.Bank.BankName},
		{"UPI", d.UID},
	}
	for _, r := range rows {
		v := r.value
		if v == "" {
			v = "N/A"
		}
		pdf.CellFormat(30, 5, r.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2-30, 5, v, "", 1, "L", false, 0, "")
	}
	endY := pdf.GetY()

	if d.UID != "" {
		amount := grand
		if s := strings.TrimSpace(d.TotalAmount); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
				amount = v
			}
		}
		intent := upi.BuildIntent(d.UID, d.Company.Name, amount, "Invoice "+d.Number)
		if data, err := qrcode.Encode(intent, qrcode.Medium, 256); err != nil {
			log.Printf("invoice: payment QR encode failed: %v", err)
		} else {
			qrX := pageWidth - marginX - qrSide
			embedPNG(pdf, "payqr", data, qrX, startY, qrSide, qrSide)
			pdf.SetXY(qrX, startY+qrSide)
			pdf.SetFont("Arial", "", 7)
			pdf.CellFormat(qrSide, 4, "Scan to pay", "", 0, "C", false, 0, "")
			if startY+qrSide+4 > endY {
				endY = startY + qrSide + 4
			}
		}
	}
	pdf.SetY(endY + 5)
}

func drawTerms(pdf *gofpdf.Fpdf, d *Draft) {
	if pdf.GetY() >= termsThresholdY {
		return
	}
	terms := d.Terms
	if len(terms) == 0 {
		terms = defaultTerms
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(contentWidth, 6, "Terms & Conditions", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(60, 60, 60)
	for i, term := range terms {
		pdf.MultiCell(contentWidth, 4.5, fmt.Sprintf("%d. %s", i+1, term), "", "L", false)
	}
}

// embedPNG registers and places a PNG image. The bytes are sanity-checked
// first so a corrupt asset is skipped instead of poisoning the whole document.
func embedPNG(pdf *gofpdf.Fpdf, name string, data []byte, x, y, w, h float64) {
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		log.Printf("invoice: skipping %s image: %v", name, err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// trimFloat prints quantities without a forced decimal tail: 2 not 2.00,
// 1.5 stays 1.5.
func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}
