// Package export serializes invoice records into one of three interchange
// encodings: a record-oriented JSON array, a quoted CSV table, or a
// multi-sheet XLSX workbook. Serialization never mutates the records.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/entity"
)

// ErrUnsupportedFormat reports a format value the serializer does not
// know. This is a caller contract violation, not noisy input, so it is
// surfaced loudly instead of defaulting.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Settings controls what an export payload contains and how values are
// displayed.
type Settings struct {
	IncludeLineItems bool
	IncludeGST       bool
	DateFormat       constants.DateFormat
	CurrencyFormat   constants.CurrencyFormat
}

// Service produces export payloads from invoice collections.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Export serializes invoices into the requested format and returns the
// payload together with its conventional filename
// (invoices_<format>_<YYYY-MM-DD>.<ext>).
func (s *Service) Export(invoices []entity.Invoice, format constants.ExportFormat, settings Settings) ([]byte, string, error) {
	start := time.Now()

	var payload []byte
	var err error
	switch format {
	case constants.FormatJSON:
		payload, err = marshalJSON(invoices, settings)
	case constants.FormatCSV:
		payload = marshalCSV(invoices, settings)
	case constants.FormatExcel:
		payload, err = marshalXLSX(invoices, settings)
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		s.logger.Error("export.failed", "format", format, "records", len(invoices), "error", err)
		return nil, "", err
	}

	filename := fmt.Sprintf("invoices_%s_%s.%s", format, time.Now().UTC().Format("2006-01-02"), format.Ext())

	s.logger.Info("export.ok",
		"format", format,
		"records", len(invoices),
		"bytes", len(payload),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return payload, filename, nil
}

// formatDate re-renders a YYYY-MM-DD date in the display format. Dates
// that do not parse are passed through unchanged.
func formatDate(date string, f constants.DateFormat) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	switch f {
	case constants.DateDDMMYYYY:
		return t.Format("02-01-2006")
	case constants.DateMMDDYYYY:
		return t.Format("01-02-2006")
	case constants.DateYYYYMMDD:
		return t.Format("2006-01-02")
	}
	return date
}

func formatCurrency(amount float64, c constants.CurrencyFormat) string {
	if c == constants.CurrencyINR {
		return fmt.Sprintf("₹%.2f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

func statusOrPending(s constants.InvoiceStatus) constants.InvoiceStatus {
	if s == "" {
		return constants.StatusPending
	}
	return s
}
