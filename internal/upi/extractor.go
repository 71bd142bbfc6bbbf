package upi

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// DefaultAmount is assigned when a payee handle is recovered without any
// amount. The caller must treat such amounts as placeholders; PaymentInfo
// flags them via AmountSynthetic.
const DefaultAmount = 1.00

// PaymentInfo is the best-effort result of scanning a payment string.
// Zero values mean the field was not recovered.
type PaymentInfo struct {
	Amount          float64 `json:"amount,omitempty"`
	AmountSynthetic bool    `json:"amount_synthetic,omitempty"`
	PayeeID         string  `json:"payee_id,omitempty"`
	PayeeName       string  `json:"payee_name,omitempty"`
	Bank            string  `json:"bank,omitempty"`
}

// Empty reports total extraction failure: nothing at all was recovered and the
// caller should fall back to treating the raw input as an opaque identifier.
func (p PaymentInfo) Empty() bool {
	return p.PayeeID == "" && p.Amount == 0 && p.Bank == ""
}

// amountStrategy is one heuristic in the ordered fallback chain. The first
// strategy whose pattern yields a positive parseable number wins.
type amountStrategy struct {
	name string
	re   *regexp.Regexp
}

// The plain/grouped decimal patterns anchor on a non-digit, non-comma prefix so
// a plain match never bites the tail off a grouped amount like "1,234.56".
var amountStrategies = []amountStrategy{
	{"decimal_plain", regexp.MustCompile(`(?:^|[^\d,])(\d+\.\d{2})\b`)},
	{"decimal_thousands", regexp.MustCompile(`(?:^|[^\d,])(\d{1,3}(?:,\d{3})+\.\d{2})\b`)},
	{"decimal_indian", regexp.MustCompile(`(?:^|[^\d,])(\d{1,2}(?:,\d{2})*,\d{3}\.\d{2})\b`)},
	{"currency_prefix", regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR)\s*([\d,]+(?:\.\d+)?)`)},
	{"query_marker", regexp.MustCompile(`(?i)\b(?:am|amount|amt)=([0-9.]+)`)},
	{"labeled_phrase", regexp.MustCompile(`(?i)\b(?:amount|total|sum)\s*:\s*(?:₹|Rs\.?|INR)?\s*([\d,]+(?:\.\d+)?)`)},
	{"currency_word", regexp.MustCompile(`(?i)\b([\d,]+(?:\.\d+)?)\s*(?:rupees|rs|inr)\b`)},
	{"after_handle", regexp.MustCompile(`(?i)@(?:` + suffixPattern() + `)\b\s+([\d,]+(?:\.\d+)?)`)},
}

// handleRe matches a bare payee handle like "9561164142@ybl".
var handleRe = regexp.MustCompile(`^\S+@\S+$`)

// Extract scans an arbitrary input string (raw QR payload or typed text) and
// recovers a payable amount, payee handle, display name and bank affiliation.
// Heuristics run in a fixed order and the first match wins per field,
// independently per field. Extract never fails; malformed input degrades to a
// partial or empty PaymentInfo.
func Extract(raw string) PaymentInfo {
	var info PaymentInfo
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return info
	}

	// Structured payment-intent parse finalizes whichever fields it finds.
	if values, ok := intentQuery(raw); ok {
		info.PayeeID = strings.TrimSpace(values.Get("pa"))
		info.PayeeName = strings.TrimSpace(values.Get("pn"))
		if amt, ok := parseAmount(values.Get("am")); ok {
			info.Amount = amt
		}
	}

	if info.Amount == 0 {
		info.Amount = scanAmount(raw)
	}

	if info.PayeeID == "" && handleRe.MatchString(raw) {
		if _, ok := BankForHandle(raw); ok {
			info.PayeeID = raw
		}
	}

	if info.PayeeID != "" && info.Amount == 0 {
		info.Amount = DefaultAmount
		info.AmountSynthetic = true
	}

	if info.PayeeID != "" {
		if bank, ok := BankForHandle(info.PayeeID); ok {
			info.Bank = bank
		}
	}

	return info
}

// intentQuery extracts the key/value portion of a payment-intent string.
// It recognizes the "pay" verb followed by query parameters, or any string
// carrying a bare "pa=" key.
func intentQuery(raw string) (url.Values, bool) {
	if i := strings.Index(raw, "?"); i >= 0 && strings.Contains(strings.ToLower(raw[:i]), "pay") {
		if values, err := url.ParseQuery(raw[i+1:]); err == nil {
			return values, true
		}
	}
	if strings.Contains(raw, "pa=") {
		q := raw
		if i := strings.Index(raw, "?"); i >= 0 {
			q = raw[i+1:]
		}
		if values, err := url.ParseQuery(q); err == nil && values.Get("pa") != "" {
			return values, true
		}
	}
	return nil, false
}

// scanAmount runs the ordered amount heuristics against the raw string and
// returns the first positive parseable number, or 0 when none match.
func scanAmount(raw string) float64 {
	for _, s := range amountStrategies {
		m := s.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		if amt, ok := parseAmount(m[1]); ok {
			return amt
		}
	}
	return 0
}

func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	amt, err := strconv.ParseFloat(s, 64)
	if err != nil || amt <= 0 {
		return 0, false
	}
	return amt, true
}
