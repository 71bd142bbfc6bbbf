package upi

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildIntent assembles a UPI deep link for the given payee and amount. The
// shape follows the NPCI deep-link convention so the code stays scannable by
// external payment apps:
//
//	upi://pay?pa=<id>&pn=<name>&am=<amount>&cu=INR&tn=<note>
func BuildIntent(payeeID, payeeName string, amount float64, note string) string {
	var b strings.Builder
	b.WriteString("upi://pay?pa=")
	// '@' is legal inside a query value; payment apps expect it literal.
	b.WriteString(strings.ReplaceAll(escape(payeeID), "%40", "@"))
	if payeeName != "" {
		b.WriteString("&pn=")
		b.WriteString(escape(payeeName))
	}
	fmt.Fprintf(&b, "&am=%.2f&cu=INR", amount)
	if note != "" {
		b.WriteString("&tn=")
		b.WriteString(escape(note))
	}
	return b.String()
}

// escape percent-encodes a query value using %20 for spaces, matching what
// payment apps emit in their own QR payloads.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
