package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ashwinrao/invoice-extractor/internal/aiextract"
	"github.com/ashwinrao/invoice-extractor/internal/entity"
	"github.com/ashwinrao/invoice-extractor/internal/extract"
	"github.com/ashwinrao/invoice-extractor/internal/review"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file...]",
	Short: "Extract invoice fields from text files or scanned documents",
	Long: `Extract structured invoice records from input files.

By default each file is treated as OCR/plain text and parsed with local
heuristics. With --remote the file bytes (PDF or image) are uploaded to
the extraction backend, which performs its own OCR and field extraction.`,
	Example: `  # Parse OCR text locally
  invoice-extractor extract receipt.txt

  # Upload a scan to the extraction backend and keep it for review
  invoice-extractor extract --remote --save invoice.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().Bool("remote", false, "Send documents to the extraction backend instead of parsing locally")
	extractCmd.Flags().Bool("save", false, "Add extracted records to the review queue")
	extractCmd.Flags().StringP("output", "o", "", "Write extracted records as JSON to this file (default: stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")
	save, _ := cmd.Flags().GetBool("save")
	outputPath, _ := cmd.Flags().GetString("output")

	ctx, cancel := signalContext()
	defer cancel()

	var client *aiextract.Client
	if remote {
		if err := appCfg.ValidateForRemote(); err != nil {
			return err
		}
		client = aiextract.NewClient(aiextract.Config{
			BaseURL: appCfg.Backend.URL,
			Timeout: appCfg.Backend.Timeout,
		}, appLog)
	}

	invoices := make([]entity.Invoice, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		var inv entity.Invoice
		if remote {
			fields, _, err := client.ExtractFields(ctx, filepath.Base(path), data)
			if err != nil {
				return fmt.Errorf("extracting %s: %w", path, err)
			}
			inv = aiextract.ToInvoice(fields)
		} else {
			inv = extract.ParseInvoice(string(data))
		}

		appLog.Info("extract.done",
			"file", path,
			"merchant", inv.Merchant,
			"total", inv.TotalAmount,
			"confidence", inv.Confidence,
		)
		invoices = append(invoices, inv)
	}

	if save {
		store, err := review.NewStore(appCfg.Storage.DataDir, appLog)
		if err != nil {
			return err
		}
		defer store.Close()
		for i, inv := range invoices {
			saved, err := store.Add(ctx, inv)
			if err != nil {
				return err
			}
			invoices[i] = saved
		}
	}

	return writeJSON(invoices, outputPath)
}

// signalContext cancels on SIGINT/SIGTERM so a stuck upload can be
// abandoned cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func writeJSON(v any, outputPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outputPath, err)
		}
		appLog.Info("extract.output_written", "file", outputPath, "bytes", len(data))
		return nil
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}
