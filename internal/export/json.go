package export

import (
	"encoding/json"

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/entity"
)

// jsonRecord is one exported invoice. GSTIN and tax amount appear only
// when compliance fields are enabled; line items only when enabled.
type jsonRecord struct {
	Merchant      string                  `json:"merchant"`
	InvoiceNumber string                  `json:"invoiceNumber"`
	Date          string                  `json:"date"`
	TotalAmount   string                  `json:"totalAmount"`
	Status        constants.InvoiceStatus `json:"status"`
	GSTIN         *string                 `json:"gstin,omitempty"`
	TaxAmount     *string                 `json:"taxAmount,omitempty"`
	LineItems     *[]jsonLineItem         `json:"lineItems,omitempty"`
}

type jsonLineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       string  `json:"price"`
}

func marshalJSON(invoices []entity.Invoice, settings Settings) ([]byte, error) {
	records := make([]jsonRecord, 0, len(invoices))
	for _, inv := range invoices {
		rec := jsonRecord{
			Merchant:      inv.Merchant,
			InvoiceNumber: inv.InvoiceNumber,
			Date:          formatDate(inv.Date, settings.DateFormat),
			TotalAmount:   formatCurrency(inv.TotalAmount, settings.CurrencyFormat),
			Status:        statusOrPending(inv.Status),
		}

		if settings.IncludeGST {
			gstin := inv.GSTIN
			tax := formatCurrency(inv.TaxAmount, settings.CurrencyFormat)
			rec.GSTIN = &gstin
			rec.TaxAmount = &tax
		}

		if settings.IncludeLineItems {
			items := make([]jsonLineItem, 0, len(inv.LineItems))
			for _, li := range inv.LineItems {
				items = append(items, jsonLineItem{
					Description: li.Description,
					Quantity:    li.Quantity,
					Price:       formatCurrency(li.Price, settings.CurrencyFormat),
				})
			}
			rec.LineItems = &items
		}

		records = append(records, rec)
	}

	return json.MarshalIndent(records, "", "  ")
}
