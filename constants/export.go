package constants

// ExportFormat selects the target encoding for an export payload.
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"  // record-oriented JSON array
	FormatCSV   ExportFormat = "csv"   // tabular, every field quoted
	FormatExcel ExportFormat = "excel" // multi-sheet XLSX workbook
)

// Ext returns the file extension for the format, without a leading dot.
// Unknown formats return "" so callers fail loudly instead of guessing.
func (f ExportFormat) Ext() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatExcel:
		return "xlsx"
	}
	return ""
}

// DateFormat is the date display format used in export payloads.
type DateFormat string

const (
	DateDDMMYYYY DateFormat = "DD-MM-YYYY"
	DateMMDDYYYY DateFormat = "MM-DD-YYYY"
	DateYYYYMMDD DateFormat = "YYYY-MM-DD"
)

// CurrencyFormat is the currency display format used in export payloads.
// Both render with a fixed two decimal places.
type CurrencyFormat string

const (
	CurrencyINR CurrencyFormat = "INR" // ₹ prefix
	CurrencyUSD CurrencyFormat = "USD" // $ prefix
)
