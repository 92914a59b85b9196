// Package extract recovers structured invoice fields from raw OCR text
// using layered regex heuristics. Every extractor is a pure function that
// returns a documented default instead of failing when nothing matches:
// malformed or partial input degrades, it never errors.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/entity"
	"github.com/ashwinrao/invoice-extractor/internal/gstin"
)

var (
	// gstinCandidateRE is deliberately more permissive than the validator;
	// every candidate is run through gstin.Validate and the first accepted
	// match wins, not the first regex match.
	gstinCandidateRE = regexp.MustCompile(`\d{2}[A-Z]{5}\d{4}[A-Z][A-Z\d]Z[A-Z\d]`)

	// invoiceNumberREs are tried in order; the first capture longer than
	// three characters wins.
	invoiceNumberREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:invoice|inv|bill|receipt)\s*(?:no|num|#)?[\s:-]*([A-Z0-9/-]+)`),
		regexp.MustCompile(`(?i)#\s*([A-Z0-9/-]+)`),
	}
)

// paymentMethods is the recognized payment lexicon, in match priority order.
var paymentMethods = []string{"upi", "credit card", "debit card", "cash", "net banking", "wallet"}

// ParseInvoice runs every field extractor over rawText exactly once and
// assembles the record. Subtotal and confidence are left at zero and the
// status at pending for the review stage; no cross-field reconciliation is
// attempted here.
func ParseInvoice(rawText string) entity.Invoice {
	now := time.Now().UTC()
	return entity.Invoice{
		ID:            uuid.New(),
		Merchant:      Merchant(rawText),
		GSTIN:         GSTIN(rawText),
		InvoiceNumber: InvoiceNumber(rawText),
		Date:          Date(rawText),
		TotalAmount:   TotalAmount(rawText),
		TaxAmount:     TaxAmount(rawText),
		Subtotal:      0,
		LineItems:     LineItems(rawText),
		PaymentMethod: PaymentMethod(rawText),
		Confidence:    0,
		Status:        constants.StatusPending,
		RawText:       rawText,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// GSTIN returns the first validator-accepted GSTIN found anywhere in the
// text, or "" when none validates.
func GSTIN(text string) string {
	for _, cand := range gstinCandidateRE.FindAllString(text, -1) {
		if gstin.Validate(cand) {
			return cand
		}
	}
	return ""
}

// InvoiceNumber returns the token following an invoice/bill/receipt label
// or a bare "#", or "" when no capture exceeds three characters.
func InvoiceNumber(text string) string {
	for _, re := range invoiceNumberREs {
		if m := re.FindStringSubmatch(text); len(m) > 1 && len(m[1]) > 3 {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// PaymentMethod returns the first recognized payment method mentioned in
// the text, title-cased, defaulting to "Cash".
func PaymentMethod(text string) string {
	lower := strings.ToLower(text)
	for _, m := range paymentMethods {
		if strings.Contains(lower, m) {
			return titleCase(m)
		}
	}
	return "Cash"
}

// LineItems always returns an empty sequence: line items need spatial or
// table structure that plain OCR text does not carry. This is an
// intentional limitation, not a bug.
func LineItems(string) []entity.LineItem {
	return []entity.LineItem{}
}

// splitLines returns the non-blank, trimmed lines of text.
func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
