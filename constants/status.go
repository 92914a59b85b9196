package constants

// InvoiceStatus is the canonical review lifecycle state of an invoice record.
type InvoiceStatus string

// Stable values (these exact strings appear in exports and storage).
const (
	StatusPending  InvoiceStatus = "pending"  // extracted, awaiting human review
	StatusVerified InvoiceStatus = "verified" // reviewed and accepted
	StatusRejected InvoiceStatus = "rejected" // reviewed and discarded
)
