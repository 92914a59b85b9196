package aiextract

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/entity"
)

// serviceConfidence is the confidence assigned to records built from the
// backend: the model path is far more reliable than text heuristics but
// still goes through human review.
const serviceConfidence = 90

// ToInvoice assembles an invoice record from backend fields, applying the
// same defaults the heuristic path documents. Unmapped fields default:
// line items stay empty, payment method "Cash", status pending; subtotal
// is derived as total - tax.
func ToInvoice(f Fields) entity.Invoice {
	now := time.Now().UTC()

	merchant := f.MerchantName
	if merchant == "" {
		merchant = "Unknown"
	}
	date := f.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	// The raw field JSON is kept as the record's source text for audit;
	// there is no OCR text on this path.
	raw, _ := json.MarshalIndent(f, "", "  ")

	return entity.Invoice{
		ID:            uuid.New(),
		Merchant:      merchant,
		GSTIN:         f.GSTIN,
		InvoiceNumber: f.InvoiceNumber,
		Date:          date,
		TotalAmount:   f.TotalAmount,
		TaxAmount:     f.TaxAmount,
		Subtotal:      f.TotalAmount - f.TaxAmount,
		LineItems:     []entity.LineItem{},
		PaymentMethod: "Cash",
		Confidence:    serviceConfidence,
		Status:        constants.StatusPending,
		RawText:       string(raw),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
