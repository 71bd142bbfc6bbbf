package upi

import "strings"

// bankSuffixes maps the handle suffix after '@' to the issuing bank's display
// name. Covers the PSP handles commonly seen on Indian payment QR codes.
var bankSuffixes = map[string]string{
	"oksbi":      "State Bank of India",
	"sbi":        "State Bank of India",
	"ybl":        "Yes Bank",
	"yapl":       "Yes Bank",
	"ibl":        "ICICI Bank",
	"okicici":    "ICICI Bank",
	"icici":      "ICICI Bank",
	"okaxis":     "Axis Bank",
	"axl":        "Axis Bank",
	"axisbank":   "Axis Bank",
	"okhdfcbank": "HDFC Bank",
	"hdfcbank":   "HDFC Bank",
	"paytm":      "Paytm Payments Bank",
	"ptsbi":      "Paytm Payments Bank",
	"apl":        "Airtel Payments Bank",
	"airtel":     "Airtel Payments Bank",
	"fbl":        "Federal Bank",
	"kotak":      "Kotak Mahindra Bank",
	"okbizaxis":  "Axis Bank",
	"upi":        "BHIM",
	"jio":        "Jio Payments Bank",
	"waicici":    "ICICI Bank",
}

// BankForHandle resolves the bank display name for a payee handle such as
// "name@oksbi". Returns false when the suffix is not a known provider.
func BankForHandle(handle string) (string, bool) {
	at := strings.LastIndex(handle, "@")
	if at < 0 || at == len(handle)-1 {
		return "", false
	}
	bank, ok := bankSuffixes[strings.ToLower(strings.TrimSpace(handle[at+1:]))]
	return bank, ok
}

// suffixPattern returns the known suffixes joined for use inside a regexp
// alternation group.
func suffixPattern() string {
	parts := make([]string, 0, len(bankSuffixes))
	for s := range bankSuffixes {
		parts = append(parts, s)
	}
	return strings.Join(parts, "|")
}
