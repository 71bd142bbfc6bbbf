package salary

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"staffdesk/internal/domain"
	"staffdesk/internal/invoice"
)

// Payslip renders a monthly salary slip as a single-page A4 PDF.
func Payslip(emp *domain.Employee, b Breakdown, month time.Month, year int) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(190, 10, "SALARY SLIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s %d", month, year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	for _, row := range []struct{ label, value string }{
		{"Employee", emp.FullName},
		{"Employee Code", emp.EmpCode},
		{"Designation", emp.Designation},
		{"Department", emp.Department},
		{"Working Days", fmt.Sprintf("%d", b.WorkingDays)},
		{"Unpaid Leave", fmt.Sprintf("%d", b.UnpaidLeaveDays)},
	} {
		pdf.CellFormat(40, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(150, 6, row.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Earnings and deductions side by side.
	half := 92.0
	startY := pdf.GetY()
	leftEnd := drawColumn(pdf, 10, startY, half, "Earnings", [][2]string{
		{"Basic", money(b.Basic)},
		{"HRA", money(b.HRA)},
		{"DA", money(b.DA)},
		{"Other Allowances", money(b.OtherAllowances)},
		{"Gross Pay", money(b.MonthlyGross)},
	})
	rightEnd := drawColumn(pdf, 10+half+6, startY, half, "Deductions", [][2]string{
		{"Provident Fund", money(b.PF)},
		{"ESI", money(b.ESI)},
		{"Professional Tax", money(b.ProfessionalTax)},
		{"Leave Deduction", money(b.LeaveDeduction)},
		{"Total Deductions", money(b.TotalDeductions)},
	})
	if rightEnd > leftEnd {
		leftEnd = rightEnd
	}
	pdf.SetY(leftEnd + 6)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(190, 8, "Net Pay: "+money(b.NetPay), "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(190, 5, invoice.AmountInWords(b.NetPay), "", "C", false)

	pdf.SetY(287)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(190, 5, "This is a computer generated salary slip.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("salary.Payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func drawColumn(pdf *gofpdf.Fpdf, x, y, w float64, title string, rows [][2]string) float64 {
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(33, 37, 41)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(w, 7, title, "", 0, "C", true, 0, "")
	y += 7

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(33, 37, 41)
	for i, row := range rows {
		pdf.SetXY(x, y)
		pdf.SetFillColor(245, 245, 245)
		fill := i%2 == 1
		pdf.CellFormat(w-30, 6, row[0], "", 0, "L", fill, 0, "")
		pdf.CellFormat(30, 6, row[1], "", 0, "R", fill, 0, "")
		y += 6
	}
	return y
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
