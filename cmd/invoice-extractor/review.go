package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/review"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices in the review queue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *review.Store) error {
			invoices, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(invoices) == 0 {
				fmt.Println("No invoices stored.")
				return nil
			}
			for _, inv := range invoices {
				fmt.Printf("%s  %-10s %-25s %s  ₹%.2f\n",
					inv.ID, inv.Status, truncate(inv.Merchant, 25), inv.Date, inv.TotalAmount)
			}
			return nil
		})
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [id]",
	Short: "Mark an invoice as verified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], constants.StatusVerified)
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject [id]",
	Short: "Mark an invoice as rejected",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], constants.StatusRejected)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an invoice from the queue",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		return withStore(func(store *review.Store) error {
			if all {
				return store.Clear(cmd.Context())
			}
			if len(args) == 0 {
				return fmt.Errorf("an invoice id is required unless --all is given")
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid invoice id %q: %w", args[0], err)
			}
			return store.Delete(cmd.Context(), id)
		})
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show dashboard metrics over the stored invoices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *review.Store) error {
			m, err := store.Metrics(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(m, "")
		})
	},
}

func init() {
	removeCmd.Flags().Bool("all", false, "Remove every stored invoice")
	rootCmd.AddCommand(listCmd, verifyCmd, rejectCmd, removeCmd, metricsCmd)
}

func withStore(fn func(*review.Store) error) error {
	store, err := review.NewStore(appCfg.Storage.DataDir, appLog)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func setStatus(cmd *cobra.Command, rawID string, status constants.InvoiceStatus) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid invoice id %q: %w", rawID, err)
	}
	return withStore(func(store *review.Store) error {
		if err := store.UpdateStatus(cmd.Context(), id, status); err != nil {
			return err
		}
		fmt.Printf("Invoice %s marked %s\n", id, status)
		return nil
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
