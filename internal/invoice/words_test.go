package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk/internal/invoice"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{40, "Forty Rupees Only"},
		{111.20, "One Hundred Eleven Rupees and Twenty Paise Only"},
		{2500, "Two Thousand Five Hundred Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{123456.78, "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees and Seventy Eight Paise Only"},
		{10000000, "One Crore Rupees Only"},
		{25030045.05, "Two Crore Fifty Lakh Thirty Thousand Forty Five Rupees and Five Paise Only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, invoice.AmountInWords(tt.in), "%v", tt.in)
	}
}

func TestAmountInWords_PaiseCarry(t *testing.T) {
	// 1.999 rounds to 2.00; the carry must reach the rupee part instead of
	// printing "One Hundred Paise".
	assert.Equal(t, "Two Rupees Only", invoice.AmountInWords(1.999))
}

func TestAmountInWords_NegativeUsesMagnitude(t *testing.T) {
	assert.Equal(t, "Ten Rupees Only", invoice.AmountInWords(-10))
}
