// Package aiextract calls the remote structured-extraction backend: a
// service that performs its own OCR + model inference on an uploaded
// document and returns already-structured invoice fields. When this path
// is used, the local text heuristics are bypassed entirely.
package aiextract

import "context"

// Fields is the normalized field set returned by the backend.
type Fields struct {
	MerchantName  string  `json:"merchant_name"`
	GSTIN         string  `json:"gstin"`
	InvoiceNumber string  `json:"invoice_number"`
	Date          string  `json:"date"` // YYYY-MM-DD
	TotalAmount   float64 `json:"total_amount"`
	TaxAmount     float64 `json:"tax_amount"`
}

// FieldExtractor is the interface callers depend on; *Client implements
// it. A handle is constructed once by the caller and passed down
// explicitly; there is no process-wide instance.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, filename string, document []byte) (Fields, []byte, error)
}
