package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export scan history as CSV",
	Long: `Writes the scan history as CSV, one row per scan, most recent first.

Every value is quoted and the column order is fixed, so the output is
stable across runs and safe to diff. Use --output to write to a file
instead of stdout.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	if exportOutput == "" {
		return exportService.ExportHistory(cmd.Context(), cmd.OutOrStdout())
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOutput, err)
	}
	defer f.Close()

	if err := exportService.ExportHistory(cmd.Context(), f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Exported history to %s\n", exportOutput)
	return nil
}
