package salary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/domain"
	"staffdesk/internal/salary"
)

func structure() *domain.SalaryStructure {
	return &domain.SalaryStructure{
		AnnualCTC:       600000,
		BasicPercent:    40,
		HRAPercent:      20,
		DAPercent:       10,
		PFPercent:       12,
		ESIPercent:      0.75,
		ProfessionalTax: 200,
	}
}

func TestCompute_FullMonth(t *testing.T) {
	b := salary.Compute(structure(), 22, 0)

	assert.Equal(t, 50000.0, b.MonthlyGross)
	assert.Equal(t, 20000.0, b.Basic)
	assert.Equal(t, 10000.0, b.HRA)
	assert.Equal(t, 5000.0, b.DA)
	assert.Equal(t, 15000.0, b.OtherAllowances)
	assert.Equal(t, 2400.0, b.PF)   // 12% of basic
	assert.Equal(t, 375.0, b.ESI)   // 0.75% of gross
	assert.Equal(t, 200.0, b.ProfessionalTax)
	assert.Zero(t, b.LeaveDeduction)
	assert.Equal(t, 2975.0, b.TotalDeductions)
	assert.Equal(t, 47025.0, b.NetPay)
}

func TestCompute_ProRatedLeaveDeduction(t *testing.T) {
	b := salary.Compute(structure(), 22, 2)

	// 50000 * 2/22 = 4545.4545... -> 4545.45
	assert.Equal(t, 4545.45, b.LeaveDeduction)
	assert.Equal(t, 7520.45, b.TotalDeductions)
	assert.Equal(t, 42479.55, b.NetPay)
}

func TestCompute_LeaveCappedAtWorkingDays(t *testing.T) {
	b := salary.Compute(structure(), 20, 25)
	assert.Equal(t, b.MonthlyGross, b.LeaveDeduction)
	assert.Equal(t, 20, b.UnpaidLeaveDays)
}

func TestCompute_ZeroWorkingDaysSkipsLeaveDeduction(t *testing.T) {
	b := salary.Compute(structure(), 0, 3)
	assert.Zero(t, b.LeaveDeduction)
}

func TestCompute_ComponentsSumToGross(t *testing.T) {
	b := salary.Compute(structure(), 22, 0)
	assert.Equal(t, b.MonthlyGross, b.Basic+b.HRA+b.DA+b.OtherAllowances)
}

func TestPayslip_ProducesPDF(t *testing.T) {
	emp := &domain.Employee{EmpCode: "EMP042", FullName: "Asha Verma", Designation: "Engineer", Department: "Platform"}
	b := salary.Compute(structure(), 22, 1)

	data, err := salary.Payslip(emp, b, time.March, 2025)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}
