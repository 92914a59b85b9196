package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ashwinrao/invoice-extractor/constants"
)

// LineItem is a single billed line on an invoice. It is owned by the
// invoice that contains it and has no identity of its own.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total,omitempty"`
}

// LineTotal is quantity × unit price.
func (li LineItem) LineTotal() float64 {
	return li.Quantity * li.Price
}

// Invoice represents one structured invoice record for data transfer
// between layers. The JSON field names are a stable contract for
// downstream consumers and must not change.
//
// Subtotal + TaxAmount is expected to reconcile with TotalAmount, but OCR
// input is noisy and disagreement is permitted; consumers may treat a
// mismatch as a low-confidence signal.
type Invoice struct {
	ID            uuid.UUID               `json:"id"`
	Merchant      string                  `json:"merchant"`
	GSTIN         string                  `json:"gstin"` // empty, or 15 characters
	InvoiceNumber string                  `json:"invoiceNumber"`
	Date          string                  `json:"date"` // YYYY-MM-DD
	TotalAmount   float64                 `json:"totalAmount"`
	TaxAmount     float64                 `json:"taxAmount"`
	Subtotal      float64                 `json:"subtotal"`
	LineItems     []LineItem              `json:"lineItems"`
	PaymentMethod string                  `json:"paymentMethod"`
	Confidence    float64                 `json:"confidence"` // 0..100
	Status        constants.InvoiceStatus `json:"status"`
	RawText       string                  `json:"rawText"` // verbatim source text, kept for audit
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}
