package upi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/upi"
)

func TestExtract_StructuredIntent(t *testing.T) {
	info := upi.Extract("upi://pay?pa=test@oksbi&pn=Test%20Merchant&am=6261.26&cu=INR&tn=Test%20Payment")

	assert.Equal(t, 6261.26, info.Amount)
	assert.Equal(t, "test@oksbi", info.PayeeID)
	assert.Equal(t, "Test Merchant", info.PayeeName)
	assert.Equal(t, "State Bank of India", info.Bank)
	assert.False(t, info.AmountSynthetic)
	assert.False(t, info.Empty())
}

func TestExtract_BareHandleInjectsDefaultAmount(t *testing.T) {
	info := upi.Extract("9561164142@ybl")

	assert.Equal(t, "9561164142@ybl", info.PayeeID)
	assert.Equal(t, "Yes Bank", info.Bank)
	assert.Equal(t, upi.DefaultAmount, info.Amount)
	assert.True(t, info.AmountSynthetic, "injected amount must be flagged synthetic")
}

func TestExtract_EmptyAndNoise(t *testing.T) {
	for _, in := range []string{"", "   ", "hello world", "no numbers here at all"} {
		info := upi.Extract(in)
		assert.True(t, info.Empty(), "input %q should yield total failure", in)
		assert.Zero(t, info.Amount)
		assert.Empty(t, info.PayeeID)
	}
}

func TestExtract_UnknownSuffixNotTreatedAsHandle(t *testing.T) {
	info := upi.Extract("someone@example.com")
	assert.Empty(t, info.PayeeID)
	assert.Empty(t, info.Bank)
	assert.True(t, info.Empty())
}

func TestExtract_AmountFallbacks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain_two_decimals", "paid 450.75 yesterday", 450.75},
		{"thousands_grouped", "invoice value 1,234.56 settled", 1234.56},
		{"indian_grouped", "contract worth 1,23,456.78 signed", 123456.78},
		{"rupee_symbol", "send ₹ 500 now", 500},
		{"rs_prefix", "Rs. 2500 pending", 2500},
		{"inr_prefix", "INR 99.5 due", 99.5},
		{"query_marker", "callback?amt=320.40&status=ok", 320.40},
		{"labeled_total", "Total: 780", 780},
		{"labeled_amount_with_symbol", "amount: Rs 1,050", 1050},
		{"currency_word", "pay 250 rupees by friday", 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := upi.Extract(tt.in)
			assert.Equal(t, tt.want, info.Amount)
			assert.False(t, info.AmountSynthetic)
		})
	}
}

func TestExtract_AmountAfterHandle(t *testing.T) {
	info := upi.Extract("collect from merchant@paytm 640.00 today")
	assert.Equal(t, 640.00, info.Amount)
}

func TestExtract_FirstMatchWinsPerField(t *testing.T) {
	// Structured amount finalizes the field; the 999.99 in the note must not
	// override it.
	info := upi.Extract("upi://pay?pa=shop@okicici&am=42.00&tn=ref%20999.99")
	assert.Equal(t, 42.00, info.Amount)
	assert.Equal(t, "ICICI Bank", info.Bank)
}

func TestExtract_StructuredWithoutAmountScansRemainder(t *testing.T) {
	info := upi.Extract("upi://pay?pa=shop@okhdfcbank&pn=Shop total: 150.50")
	assert.Equal(t, "shop@okhdfcbank", info.PayeeID)
	assert.Equal(t, 150.50, info.Amount)
	assert.False(t, info.AmountSynthetic)
}

func TestExtract_Idempotence(t *testing.T) {
	first := upi.Extract("upi://pay?pa=test@oksbi&pn=Test%20Merchant&am=6261.26&cu=INR")
	require.False(t, first.Empty())

	rebuilt := upi.BuildIntent(first.PayeeID, first.PayeeName, first.Amount, "")
	second := upi.Extract(rebuilt)

	assert.Equal(t, first.Amount, second.Amount)
	assert.Equal(t, first.PayeeID, second.PayeeID)
	assert.Equal(t, first.PayeeName, second.PayeeName)
	assert.Equal(t, first.Bank, second.Bank)
}

func TestBankForHandle(t *testing.T) {
	tests := []struct {
		handle string
		bank   string
		ok     bool
	}{
		{"test@oksbi", "State Bank of India", true},
		{"a@YBL", "Yes Bank", true},
		{"x@paytm", "Paytm Payments Bank", true},
		{"plain-string", "", false},
		{"trailing@", "", false},
		{"user@unknownbank", "", false},
	}
	for _, tt := range tests {
		bank, ok := upi.BankForHandle(tt.handle)
		assert.Equal(t, tt.ok, ok, tt.handle)
		assert.Equal(t, tt.bank, bank, tt.handle)
	}
}

func TestBuildIntent_Shape(t *testing.T) {
	got := upi.BuildIntent("test@oksbi", "Test Merchant", 6261.26, "Test Payment")
	assert.Equal(t, "upi://pay?pa=test@oksbi&pn=Test%20Merchant&am=6261.26&cu=INR&tn=Test%20Payment", got)
}

func TestBuildIntent_OmitsEmptyParts(t *testing.T) {
	got := upi.BuildIntent("x@ybl", "", 10, "")
	assert.Equal(t, "upi://pay?pa=x@ybl&am=10.00&cu=INR", got)
}
