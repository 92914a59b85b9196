package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ashwinrao/invoice-extractor/internal/entity"
)

const (
	sheetSummary   = "Summary"
	sheetInvoices  = "Invoices"
	sheetLineItems = "Line Items"

	// Uniform column width for readability.
	columnWidth = 15.0
)

// marshalXLSX builds the workbook format: a summary sheet, an invoices
// sheet (GSTIN column inserted when compliance fields are enabled) and,
// when line items are enabled, one row per item across all invoices.
// Header styling is cosmetic only.
func marshalXLSX(invoices []entity.Invoice, settings Settings) ([]byte, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, invoices); err != nil {
		return nil, err
	}
	if err := writeInvoicesSheet(f, invoices, settings); err != nil {
		return nil, err
	}
	if settings.IncludeLineItems {
		if err := writeLineItemsSheet(f, invoices); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet and land the reader on the summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex(sheetSummary)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, invoices []entity.Invoice) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	var totalSum, taxSum float64
	for _, inv := range invoices {
		totalSum += inv.TotalAmount
		taxSum += inv.TaxAmount
	}

	rows := [][]any{
		{"Invoice Summary Report"},
		{"Generated on", time.Now().Format("2006-01-02 15:04:05")},
		{"Total Invoices", len(invoices)},
		{"Total Amount", fmt.Sprintf("₹%.2f", totalSum)},
		{"Total Tax", fmt.Sprintf("₹%.2f", taxSum)},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetSummary, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheetSummary, "A", "B", columnWidth)
}

func writeInvoicesSheet(f *excelize.File, invoices []entity.Invoice, settings Settings) error {
	if _, err := f.NewSheet(sheetInvoices); err != nil {
		return err
	}

	headers := []string{"Merchant", "Invoice Number", "Date"}
	if settings.IncludeGST {
		headers = append(headers, "GSTIN")
	}
	headers = append(headers, "Subtotal", "Tax", "Total Amount", "Status")

	if err := writeHeaderRow(f, sheetInvoices, headers); err != nil {
		return err
	}

	for i, inv := range invoices {
		row := []any{
			inv.Merchant,
			inv.InvoiceNumber,
			formatDate(inv.Date, settings.DateFormat),
		}
		if settings.IncludeGST {
			row = append(row, inv.GSTIN)
		}
		subtotal := inv.Subtotal
		if subtotal == 0 {
			subtotal = inv.TotalAmount - inv.TaxAmount
		}
		row = append(row, subtotal, inv.TaxAmount, inv.TotalAmount, string(statusOrPending(inv.Status)))

		if err := writeRow(f, sheetInvoices, i+2, row); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheetInvoices, "A", last, columnWidth)
}

func writeLineItemsSheet(f *excelize.File, invoices []entity.Invoice) error {
	if _, err := f.NewSheet(sheetLineItems); err != nil {
		return err
	}

	headers := []string{"Invoice Number", "Item Description", "Quantity", "Price", "Total"}
	if err := writeHeaderRow(f, sheetLineItems, headers); err != nil {
		return err
	}

	row := 2
	for _, inv := range invoices {
		for _, li := range inv.LineItems {
			values := []any{inv.InvoiceNumber, li.Description, li.Quantity, li.Price, li.LineTotal()}
			if err := writeRow(f, sheetLineItems, row, values); err != nil {
				return err
			}
			row++
		}
	}

	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheetLineItems, "A", last, columnWidth)
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3B82F6"}},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
