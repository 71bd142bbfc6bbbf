package salary

import (
	"staffdesk/internal/domain"
	"staffdesk/internal/invoice"
)

// Breakdown holds one month's computed payslip figures. Every value is
// rounded to two places at the point of computation.
type Breakdown struct {
	MonthlyGross    float64 `json:"monthly_gross"`
	Basic           float64 `json:"basic"`
	HRA             float64 `json:"hra"`
	DA              float64 `json:"da"`
	OtherAllowances float64 `json:"other_allowances"`

	PF              float64 `json:"pf"`
	ESI             float64 `json:"esi"`
	ProfessionalTax float64 `json:"professional_tax"`
	LeaveDeduction  float64 `json:"leave_deduction"`

	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`

	WorkingDays     int `json:"working_days"`
	UnpaidLeaveDays int `json:"unpaid_leave_days"`
}

// Compute derives a month's payslip from the percentage-based CTC structure
// and the month's attendance. Component percentages apply to the monthly
// gross (annual CTC / 12); PF applies to basic. Unpaid leave is deducted
// pro rata against the month's working days.
func Compute(s *domain.SalaryStructure, workingDays, unpaidLeaveDays int) Breakdown {
	gross := invoice.Round2(s.AnnualCTC / 12)

	b := Breakdown{
		MonthlyGross:    gross,
		Basic:           invoice.Round2(gross * s.BasicPercent / 100),
		HRA:             invoice.Round2(gross * s.HRAPercent / 100),
		DA:              invoice.Round2(gross * s.DAPercent / 100),
		ProfessionalTax: invoice.Round2(s.ProfessionalTax),
		WorkingDays:     workingDays,
		UnpaidLeaveDays: unpaidLeaveDays,
	}
	b.OtherAllowances = invoice.Round2(gross - b.Basic - b.HRA - b.DA)
	b.PF = invoice.Round2(b.Basic * s.PFPercent / 100)
	b.ESI = invoice.Round2(gross * s.ESIPercent / 100)

	if workingDays > 0 && unpaidLeaveDays > 0 {
		if unpaidLeaveDays > workingDays {
			unpaidLeaveDays = workingDays
			b.UnpaidLeaveDays = workingDays
		}
		b.LeaveDeduction = invoice.Round2(gross * float64(unpaidLeaveDays) / float64(workingDays))
	}

	b.TotalDeductions = invoice.Round2(b.PF + b.ESI + b.ProfessionalTax + b.LeaveDeduction)
	b.NetPay = invoice.Round2(gross - b.TotalDeductions)
	return b
}
