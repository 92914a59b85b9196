package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ashwinrao/invoice-extractor/internal/entity"
)

// marshalCSV renders the tabular format: a plain header row, then one row
// per invoice with every field double-quote-wrapped. Line items are
// flattened into a single semicolon-joined column plus a count column.
func marshalCSV(invoices []entity.Invoice, settings Settings) []byte {
	headers := []string{"Merchant", "Invoice Number", "Date", "Total Amount", "Status"}
	if settings.IncludeGST {
		headers = append(headers, "GSTIN", "Tax Amount")
	}
	if settings.IncludeLineItems {
		headers = append(headers, "Line Items", "Items Count")
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))

	for _, inv := range invoices {
		row := []string{
			inv.Merchant,
			inv.InvoiceNumber,
			formatDate(inv.Date, settings.DateFormat),
			fmt.Sprintf("%.2f", inv.TotalAmount),
			string(statusOrPending(inv.Status)),
		}
		if settings.IncludeGST {
			row = append(row, inv.GSTIN, fmt.Sprintf("%.2f", inv.TaxAmount))
		}
		if settings.IncludeLineItems {
			row = append(row, flattenLineItems(inv.LineItems), strconv.Itoa(len(inv.LineItems)))
		}

		b.WriteString("\n")
		for i, cell := range row {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"` + cell + `"`)
		}
	}

	return []byte(b.String())
}

func flattenLineItems(items []entity.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, li := range items {
		parts = append(parts, fmt.Sprintf("%s (%gx₹%g)", li.Description, li.Quantity, li.Price))
	}
	return strings.Join(parts, "; ")
}
