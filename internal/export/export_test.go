package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/entity"
)

func sampleInvoices() []entity.Invoice {
	return []entity.Invoice{
		{
			ID:            uuid.New(),
			Merchant:      "Zomato",
			GSTIN:         "29AABCT1332L1ZN",
			InvoiceNumber: "INV-001",
			Date:          "2024-08-05",
			TotalAmount:   1295.00,
			TaxAmount:     45.00,
			Subtotal:      1250.00,
			LineItems: []entity.LineItem{
				{Description: "Paneer Tikka", Quantity: 2, Price: 250},
				{Description: "Delivery", Quantity: 1, Price: 45},
			},
			PaymentMethod: "Upi",
			Status:        constants.StatusVerified,
		},
		{
			ID:            uuid.New(),
			Merchant:      "Unknown Merchant",
			InvoiceNumber: "",
			Date:          "2024-01-12",
			TotalAmount:   100.00,
			TaxAmount:     0,
		},
	}
}

func baseSettings() Settings {
	return Settings{
		DateFormat:     constants.DateYYYYMMDD,
		CurrencyFormat: constants.CurrencyINR,
	}
}

func TestExportCSVHeaderAndRowShape(t *testing.T) {
	svc := NewService(nil)

	payload, _, err := svc.Export(sampleInvoices()[:1], constants.FormatCSV, baseSettings())
	require.NoError(t, err)

	lines := strings.Split(string(payload), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Merchant,Invoice Number,Date,Total Amount,Status", lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 5)
	for _, f := range fields {
		assert.True(t, strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`), "field not quoted: %s", f)
	}
	assert.Equal(t, `"Zomato","INV-001","2024-08-05","1295.00","verified"`, lines[1])
}

func TestExportCSVConditionalColumns(t *testing.T) {
	svc := NewService(nil)
	settings := baseSettings()
	settings.IncludeGST = true
	settings.IncludeLineItems = true

	payload, _, err := svc.Export(sampleInvoices(), constants.FormatCSV, settings)
	require.NoError(t, err)

	lines := strings.Split(string(payload), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Merchant,Invoice Number,Date,Total Amount,Status,GSTIN,Tax Amount,Line Items,Items Count", lines[0])
	assert.Contains(t, lines[1], `"Paneer Tikka (2x₹250); Delivery (1x₹45)","2"`)
	// Missing status falls back to pending.
	assert.Contains(t, lines[2], `"pending"`)
}

func TestExportJSON(t *testing.T) {
	svc := NewService(nil)
	settings := baseSettings()
	settings.DateFormat = constants.DateDDMMYYYY

	payload, _, err := svc.Export(sampleInvoices(), constants.FormatJSON, settings)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(payload, &records))
	require.Len(t, records, 2)

	assert.Equal(t, "Zomato", records[0]["merchant"])
	assert.Equal(t, "05-08-2024", records[0]["date"])
	assert.Equal(t, "₹1295.00", records[0]["totalAmount"])
	assert.Equal(t, "verified", records[0]["status"])

	// Compliance and line item fields stay out unless enabled.
	_, hasGSTIN := records[0]["gstin"]
	assert.False(t, hasGSTIN)
	_, hasItems := records[0]["lineItems"]
	assert.False(t, hasItems)

	settings.IncludeGST = true
	settings.IncludeLineItems = true
	payload, _, err = svc.Export(sampleInvoices(), constants.FormatJSON, settings)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &records))

	assert.Equal(t, "29AABCT1332L1ZN", records[0]["gstin"])
	assert.Equal(t, "₹45.00", records[0]["taxAmount"])
	items, ok := records[0]["lineItems"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "Paneer Tikka", first["description"])
	assert.Equal(t, "₹250.00", first["price"])

	// USD currency switches the prefix.
	settings.CurrencyFormat = constants.CurrencyUSD
	payload, _, err = svc.Export(sampleInvoices(), constants.FormatJSON, settings)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &records))
	assert.Equal(t, "$1295.00", records[0]["totalAmount"])
}

func TestExportIdempotent(t *testing.T) {
	svc := NewService(nil)
	settings := baseSettings()
	settings.IncludeGST = true
	settings.IncludeLineItems = true
	invoices := sampleInvoices()

	for _, format := range []constants.ExportFormat{constants.FormatJSON, constants.FormatCSV} {
		a, _, err := svc.Export(invoices, format, settings)
		require.NoError(t, err)
		b, _, err := svc.Export(invoices, format, settings)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(a, b), "format %s not deterministic", format)
	}
}

func TestExportXLSX(t *testing.T) {
	svc := NewService(nil)
	settings := baseSettings()
	settings.IncludeGST = true

	payload, _, err := svc.Export(sampleInvoices(), constants.FormatExcel, settings)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Invoices"}, f.GetSheetList())

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Invoice Summary Report", title)
	count, err := f.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
	totals, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "₹1395.00", totals)

	header, err := f.GetCellValue("Invoices", "D1")
	require.NoError(t, err)
	assert.Equal(t, "GSTIN", header)
	gstinCell, err := f.GetCellValue("Invoices", "D2")
	require.NoError(t, err)
	assert.Equal(t, "29AABCT1332L1ZN", gstinCell)

	// The second record has no stored subtotal; total - tax is derived.
	subtotal, err := f.GetCellValue("Invoices", "E3")
	require.NoError(t, err)
	assert.Equal(t, "100", subtotal)
}

func TestExportXLSXLineItemsSheet(t *testing.T) {
	svc := NewService(nil)
	settings := baseSettings()
	settings.IncludeLineItems = true

	payload, _, err := svc.Export(sampleInvoices(), constants.FormatExcel, settings)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Line Items")
	desc, err := f.GetCellValue("Line Items", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Paneer Tikka", desc)
	total, err := f.GetCellValue("Line Items", "E2")
	require.NoError(t, err)
	assert.Equal(t, "500", total)

	// Without compliance fields the GSTIN column is absent.
	header, err := f.GetCellValue("Invoices", "D1")
	require.NoError(t, err)
	assert.Equal(t, "Subtotal", header)
}

func TestExportFilename(t *testing.T) {
	svc := NewService(nil)
	today := time.Now().UTC().Format("2006-01-02")

	_, name, err := svc.Export(nil, constants.FormatJSON, baseSettings())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("invoices_json_%s.json", today), name)

	_, name, err = svc.Export(nil, constants.FormatExcel, baseSettings())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("invoices_excel_%s.xlsx", today), name)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewService(nil)

	_, _, err := svc.Export(sampleInvoices(), constants.ExportFormat("pdf"), baseSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
