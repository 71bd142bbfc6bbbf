package invoice

import (
	"math"
	"time"
)

// Round2 rounds a currency value to two decimal places, half away from zero.
// Derived figures are rounded at the point of computation, not at display
// time, so re-summation never accumulates rounding drift.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineItem is a single invoice row. Amount, CGST, SGST and Total are derived
// by ComputeLine; stored values are never trusted at render time.
type LineItem struct {
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Shipping        float64 `json:"shipping"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`

	Amount float64 `json:"amount"`
	CGST   float64 `json:"cgst"`
	SGST   float64 `json:"sgst"`
	Total  float64 `json:"total"`
}

// ComputeLine fills the derived fields of a line item:
//
//	amount = qty*unit - discount
//	cgst = sgst = tax/2
//	total = amount + tax + shipping
//
// with every figure rounded to two places as it is produced.
func ComputeLine(it LineItem) LineItem {
	base := it.Quantity * it.UnitPrice
	amount := base - base*it.DiscountPercent/100
	tax := amount * it.TaxPercent / 100

	it.Amount = Round2(amount)
	it.CGST = Round2(tax / 2)
	it.SGST = Round2(tax / 2)
	it.Total = Round2(amount + tax + it.Shipping)
	return it
}

// Party holds one side of the billed-by / billed-to block.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	GSTIN   string `json:"gstin"`
}

// BankDetails is the static account block printed beside the payment QR.
type BankDetails struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bank_name"`
}

// Draft is the full invoice form state submitted for document generation.
// It is a plain value: the composer takes it as input and produces bytes,
// with no ambient state in between.
type Draft struct {
	Number       string     `json:"number"`
	EmployeeCode string     `json:"employee_code"`
	InvoiceDate  time.Time  `json:"invoice_date"`
	DueDate      *time.Time `json:"due_date,omitempty"`

	Company  Party `json:"company"`
	Customer Party `json:"customer"`

	Items []LineItem `json:"items"`

	// Quick-entry fields build a single synthetic row when Items is empty.
	QuickDescription string  `json:"quick_description"`
	QuickQuantity    float64 `json:"quick_quantity"`
	QuickUnitPrice   float64 `json:"quick_unit_price"`
	QuickShipping    float64 `json:"quick_shipping"`
	QuickDiscount    float64 `json:"quick_discount"`
	QuickTax         float64 `json:"quick_tax"`

	TotalAmount string `json:"total_amount"`

	UID  string      `json:"uid"`
	Bank BankDetails `json:"bank"`

	Terms []string `json:"terms"`
	Notes string   `json:"notes"`

	LogoPNG  []byte `json:"-"`
	StampPNG []byte `json:"-"`
}

// HasLines reports whether the draft can produce at least one printable row:
// either an explicit item list or a fully populated quick-entry triple.
func (d *Draft) HasLines() bool {
	if len(d.Items) > 0 {
		return true
	}
	return d.QuickDescription != "" && d.QuickQuantity > 0 && d.QuickUnitPrice > 0
}

// Rows returns the rows to print. When the item list is empty a single
// synthetic row is built from the quick-entry fields using the same column
// layout as explicit rows.
func (d *Draft) Rows() []LineItem {
	if len(d.Items) > 0 {
		return d.Items
	}
	return []LineItem{{
		Name:            d.QuickDescription,
		Quantity:        d.QuickQuantity,
		UnitPrice:       d.QuickUnitPrice,
		Shipping:        d.QuickShipping,
		DiscountPercent: d.QuickDiscount,
		TaxPercent:      d.QuickTax,
	}}
}
