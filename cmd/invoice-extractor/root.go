package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashwinrao/invoice-extractor/internal/common"
)

var version = "1.0.0"

var (
	appLog *slog.Logger
	appCfg *common.Config
)

var rootCmd = &cobra.Command{
	Use:   "invoice-extractor",
	Short: "Extract structured data from Indian invoices and receipts",
	Long: `invoice-extractor turns raw invoice text and scanned documents into
structured records: merchant, GSTIN, invoice number, date, amounts and
payment method. Records can be kept in a local review queue, verified or
rejected, and exported to JSON, CSV or Excel.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute wires shared state and runs the CLI.
func Execute(logger *slog.Logger) {
	appLog = logger
	appCfg = common.LoadConfig()

	if err := rootCmd.Execute(); err != nil {
		appLog.Error("cmd.failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
