package aiextract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ashwinrao/invoice-extractor/constants"
)

func TestToInvoice(t *testing.T) {
	inv := ToInvoice(Fields{
		MerchantName:  "Swiggy",
		GSTIN:         "29AABCT1332L1ZN",
		InvoiceNumber: "INV-2024-0042",
		Date:          "2024-08-05",
		TotalAmount:   1295.00,
		TaxAmount:     45.00,
	})

	assert.NotEqual(t, inv.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "Swiggy", inv.Merchant)
	assert.Equal(t, "29AABCT1332L1ZN", inv.GSTIN)
	assert.Equal(t, "2024-08-05", inv.Date)
	assert.Equal(t, 1295.00, inv.TotalAmount)
	assert.Equal(t, 45.00, inv.TaxAmount)
	assert.Equal(t, 1250.00, inv.Subtotal)
	assert.Equal(t, "Cash", inv.PaymentMethod)
	assert.Equal(t, float64(serviceConfidence), inv.Confidence)
	assert.Equal(t, constants.StatusPending, inv.Status)
	assert.NotNil(t, inv.LineItems)
	assert.Empty(t, inv.LineItems)
	assert.Contains(t, inv.RawText, "INV-2024-0042")
	assert.False(t, inv.CreatedAt.IsZero())
	assert.Equal(t, inv.CreatedAt, inv.UpdatedAt)
}

func TestToInvoiceDefaults(t *testing.T) {
	inv := ToInvoice(Fields{})

	assert.Equal(t, "Unknown", inv.Merchant)
	assert.Empty(t, inv.GSTIN)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), inv.Date)
	assert.Zero(t, inv.TotalAmount)
	assert.Zero(t, inv.Subtotal)
	assert.Equal(t, constants.StatusPending, inv.Status)
}
