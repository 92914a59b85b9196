package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Amounts are recognized only in thousands-grouped form with at most two
// fraction digits, e.g. 1,234.56. The unlabeled fallback additionally
// requires the two fraction digits, so bare integers never qualify.
var (
	labeledTotalRE = regexp.MustCompile(`(?i)(?:total|grand total|amount payable|net amount|bal|balance)\s*[:₹-]?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	labeledTaxRE   = regexp.MustCompile(`(?i)(?:gst|tax|vat)\s*[:₹-]?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	amountTokenRE  = regexp.MustCompile(`\d{1,3}(?:,\d{3})*\.\d{2}`)
)

// TotalAmount returns the maximum amount following a total-style label.
// When no labeled amount exists it falls back to the maximum
// currency-shaped token anywhere in the text: invoices usually print the
// grand total as the largest such number, which approximates "the total"
// without layout information. Returns 0 when nothing qualifies.
func TotalAmount(text string) float64 {
	best := 0.0
	for _, m := range labeledTotalRE.FindAllStringSubmatch(text, -1) {
		if v := parseAmount(m[1]); v > best {
			best = v
		}
	}
	if best == 0 {
		for _, tok := range amountTokenRE.FindAllString(text, -1) {
			if v := parseAmount(tok); v > best {
				best = v
			}
		}
	}
	return best
}

// TaxAmount sums every amount following a gst/tax/vat label. Components
// are summed rather than maxed: an invoice may split its tax into several
// lines (CGST/SGST) that together form the total tax.
func TaxAmount(text string) float64 {
	sum := 0.0
	for _, m := range labeledTaxRE.FindAllStringSubmatch(text, -1) {
		sum += parseAmount(m[1])
	}
	return sum
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
