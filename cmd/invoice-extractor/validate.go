package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashwinrao/invoice-extractor/internal/gstin"
)

var validateCmd = &cobra.Command{
	Use:   "validate [gstin...]",
	Short: "Validate GST identification numbers",
	Long: `Check each argument against the full GSTIN rules: structure, state
code, embedded PAN and the base-36 checksum.`,
	Example: `  invoice-extractor validate 29AABCT1332L1ZN
  invoice-extractor validate "29 AABCT 1332L 1ZN" 07AAACI1234A1Z5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, id := range args {
		if gstin.Validate(id) {
			fmt.Printf("%s  VALID    state: %s\n", gstin.Format(id), gstin.StateFromGSTIN(id))
		} else {
			fmt.Printf("%s  INVALID\n", id)
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d GSTINs failed validation", invalid, len(args))
	}
	return nil
}
