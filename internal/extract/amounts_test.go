package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalAmount(t *testing.T) {
	t.Run("labeled maximum wins over other labels", func(t *testing.T) {
		text := "Subtotal: 100.00\nTotal: 150.00"
		assert.Equal(t, 150.00, TotalAmount(text))
	})

	t.Run("grand total with grouping", func(t *testing.T) {
		assert.Equal(t, 1234.56, TotalAmount("Grand Total: 1,234.56"))
	})

	t.Run("currency marker between label and amount", func(t *testing.T) {
		assert.Equal(t, 499.00, TotalAmount("Amount Payable ₹ 499.00"))
	})

	t.Run("unlabeled fallback takes the maximum token", func(t *testing.T) {
		text := "Item A 220.50\nItem B 1,120.00\nItem C 43.99"
		assert.Equal(t, 1120.00, TotalAmount(text))
	})

	t.Run("bare integers are not amounts", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalAmount("quantity 3 of 1200"))
	})

	t.Run("nothing recognizable", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalAmount("thanks for shopping"))
	})
}

func TestTaxAmount(t *testing.T) {
	t.Run("components are summed", func(t *testing.T) {
		assert.Equal(t, 45.00, TaxAmount("CGST: 22.50\nSGST: 22.50"))
	})

	t.Run("single label", func(t *testing.T) {
		assert.Equal(t, 20.00, TaxAmount("VAT 20.00 included"))
	})

	t.Run("no tax lines", func(t *testing.T) {
		assert.Equal(t, 0.0, TaxAmount("Total: 100.00"))
	})
}
