package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk/internal/invoice"
)

func TestComputeLine_Contract(t *testing.T) {
	tests := []struct {
		name string
		in   invoice.LineItem
		want float64
	}{
		{
			name: "discount_tax_shipping",
			in:   invoice.LineItem{Name: "Widget", Quantity: 2, UnitPrice: 50, Shipping: 5, DiscountPercent: 10, TaxPercent: 18},
			// base=100, after 10% discount=90, after 18% tax=106.2, +5 shipping
			want: 111.20,
		},
		{
			name: "no_modifiers",
			in:   invoice.LineItem{Name: "Plain", Quantity: 3, UnitPrice: 40},
			want: 120,
		},
		{
			name: "tax_only",
			in:   invoice.LineItem{Name: "Service", Quantity: 1, UnitPrice: 1000, TaxPercent: 18},
			want: 1180,
		},
		{
			name: "fractional_quantity",
			in:   invoice.LineItem{Name: "Hours", Quantity: 2.5, UnitPrice: 99.99, TaxPercent: 5},
			// 249.975 * 1.05 = 262.47375 -> 262.47
			want: 262.47,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.ComputeLine(tt.in)
			assert.Equal(t, tt.want, got.Total)

			// total == round2((qty*unit)*(1-disc/100)*(1+tax/100) + shipping)
			base := tt.in.Quantity * tt.in.UnitPrice
			expected := invoice.Round2(base*(1-tt.in.DiscountPercent/100)*(1+tt.in.TaxPercent/100) + tt.in.Shipping)
			assert.Equal(t, expected, got.Total)
		})
	}
}

func TestComputeLine_TaxSplitsEvenly(t *testing.T) {
	got := invoice.ComputeLine(invoice.LineItem{Quantity: 2, UnitPrice: 50, DiscountPercent: 10, TaxPercent: 18})
	// tax on 90 at 18% = 16.2, split 8.1 / 8.1
	assert.Equal(t, 8.1, got.CGST)
	assert.Equal(t, 8.1, got.SGST)
	assert.Equal(t, 90.0, got.Amount)
}

func TestComputeLine_IgnoresStaleDerivedFields(t *testing.T) {
	stale := invoice.LineItem{Quantity: 1, UnitPrice: 100, Total: 9999, Amount: 9999, CGST: 1, SGST: 1}
	got := invoice.ComputeLine(stale)
	assert.Equal(t, 100.0, got.Total)
	assert.Equal(t, 100.0, got.Amount)
	assert.Zero(t, got.CGST)
}

func TestGrandTotal_SumsDisplayedRowTotals(t *testing.T) {
	// Each row rounds at computation; the grand total is the sum of the
	// rounded figures, not a rounding of the raw sum.
	rows := []invoice.LineItem{
		{Quantity: 1, UnitPrice: 10.004},
		{Quantity: 1, UnitPrice: 10.004},
		{Quantity: 1, UnitPrice: 10.004},
	}
	var grand float64
	for _, r := range rows {
		grand += invoice.ComputeLine(r).Total
	}
	assert.Equal(t, 30.0, invoice.Round2(grand))
	assert.NotEqual(t, invoice.Round2(3*10.004), invoice.Round2(grand))
}

func TestDraft_HasLines(t *testing.T) {
	t.Run("explicit_items", func(t *testing.T) {
		d := invoice.Draft{Items: []invoice.LineItem{{Name: "x", Quantity: 1, UnitPrice: 1}}}
		assert.True(t, d.HasLines())
	})
	t.Run("quick_entry_complete", func(t *testing.T) {
		d := invoice.Draft{QuickDescription: "Widget", QuickQuantity: 2, QuickUnitPrice: 50}
		assert.True(t, d.HasLines())
	})
	t.Run("quick_entry_incomplete", func(t *testing.T) {
		for _, d := range []invoice.Draft{
			{},
			{QuickDescription: "Widget"},
			{QuickDescription: "Widget", QuickQuantity: 2},
			{QuickQuantity: 2, QuickUnitPrice: 50},
			{QuickDescription: "Widget", QuickQuantity: 0, QuickUnitPrice: 50},
		} {
			assert.False(t, d.HasLines())
		}
	})
}

func TestDraft_Rows_QuickEntryFallback(t *testing.T) {
	d := invoice.Draft{
		QuickDescription: "Widget",
		QuickQuantity:    2,
		QuickUnitPrice:   50,
		QuickDiscount:    10,
		QuickTax:         18,
		QuickShipping:    5,
	}
	rows := d.Rows()
	if assert.Len(t, rows, 1) {
		got := invoice.ComputeLine(rows[0])
		assert.Equal(t, "Widget", got.Name)
		assert.Equal(t, 111.20, got.Total)
	}
}

func TestDraft_Rows_PreservesOrder(t *testing.T) {
	d := invoice.Draft{Items: []invoice.LineItem{
		{Name: "first"}, {Name: "second"}, {Name: "third"},
	}}
	rows := d.Rows()
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{rows[0].Name, rows[1].Name, rows[2].Name})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, invoice.Round2(3.14159))
	assert.Equal(t, 2.72, invoice.Round2(2.718))
	assert.Equal(t, 0.0, invoice.Round2(0))
	assert.Equal(t, -1.01, invoice.Round2(-1.006))
	assert.Equal(t, 106.2, invoice.Round2(106.2))
}
