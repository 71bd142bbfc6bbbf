package invoice

import (
	"math"
	"strings"
)

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a currency amount in Indian-numbering words, e.g.
// 123456.05 -> "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees
// and Five Paise Only". The paise suffix is omitted when the fractional part
// rounds to zero.
func AmountInWords(v float64) string {
	v = Round2(math.Abs(v))
	rupees := int64(v)
	paise := int64(math.Round((v - float64(rupees)) * 100))
	// Rounding the fraction can carry into the rupee part (e.g. 1.999).
	if paise == 100 {
		rupees++
		paise = 0
	}

	var b strings.Builder
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(intWords(rupees))
	}
	b.WriteString(" Rupees")
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(intWords(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

// intWords converts a positive integer to words using crore/lakh/thousand/
// hundred grouping.
func intWords(n int64) string {
	var parts []string

	appendGroup := func(val int64, label string) {
		if val == 0 {
			return
		}
		parts = append(parts, intWords(val), label)
	}

	appendGroup(n/10000000, "Crore")
	n %= 10000000
	appendGroup(n/100000, "Lakh")
	n %= 100000
	appendGroup(n/1000, "Thousand")
	n %= 1000
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tensWords[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
