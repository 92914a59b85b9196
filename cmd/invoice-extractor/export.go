package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/export"
	"github.com/ashwinrao/invoice-extractor/internal/review"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored invoices to JSON, CSV or Excel",
	Example: `  invoice-extractor export --format csv
  invoice-extractor export --format excel --include-line-items --out ./reports
  invoice-extractor export --format json --currency USD --date-format DD-MM-YYYY`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "json", "Export format: json, csv or excel")
	exportCmd.Flags().Bool("include-gst", true, "Include GSTIN and tax columns")
	exportCmd.Flags().Bool("include-line-items", false, "Include line item details")
	exportCmd.Flags().String("date-format", string(constants.DateYYYYMMDD), "Date display format: YYYY-MM-DD, DD-MM-YYYY or MM-DD-YYYY")
	exportCmd.Flags().String("currency", string(constants.CurrencyINR), "Currency display: INR or USD")
	exportCmd.Flags().String("out", ".", "Directory to write the export file into")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	includeGST, _ := cmd.Flags().GetBool("include-gst")
	includeLineItems, _ := cmd.Flags().GetBool("include-line-items")
	dateFormat, _ := cmd.Flags().GetString("date-format")
	currency, _ := cmd.Flags().GetString("currency")
	outDir, _ := cmd.Flags().GetString("out")

	store, err := review.NewStore(appCfg.Storage.DataDir, appLog)
	if err != nil {
		return err
	}
	defer store.Close()

	invoices, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		return fmt.Errorf("nothing to export: the review queue is empty")
	}

	svc := export.NewService(appLog)
	payload, filename, err := svc.Export(invoices, constants.ExportFormat(format), export.Settings{
		IncludeLineItems: includeLineItems,
		IncludeGST:       includeGST,
		DateFormat:       constants.DateFormat(dateFormat),
		CurrencyFormat:   constants.CurrencyFormat(currency),
	})
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, filename)
	if err := os.WriteFile(outPath, payload, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("Exported %d invoices to %s\n", len(invoices), outPath)
	return nil
}
