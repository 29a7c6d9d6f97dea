package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

var (
	scanJSON bool
	scanCSV  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan a certificate document",
	Long: `Extracts certificate data from a PDF, text or image file.

PDF files are converted with pdftotext; scanned documents fall back to
OCR via tesseract. The extracted fields, a confidence score and the
scan metadata are printed and the result is added to the history.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the record as JSON")
	scanCmd.Flags().BoolVar(&scanCSV, "csv", false, "output the record as CSV")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}
	if scanJSON && scanCSV {
		return errors.New("--json and --csv are mutually exclusive")
	}

	rec, err := scanService.ScanFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	switch {
	case scanJSON:
		return outputScanJSON(cmd, rec)
	case scanCSV:
		return outputScanCSV(cmd, rec)
	case !term.IsTerminal(int(os.Stdout.Fd())):
		// Piped output gets machine-readable JSON.
		return outputScanJSON(cmd, rec)
	default:
		return outputScanTable(cmd, rec)
	}
}

func outputScanJSON(cmd *cobra.Command, rec *domain.ScanRecord) error {
	data, err := json.MarshalIndent(rec.ForHistory(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputScanCSV(cmd *cobra.Command, rec *domain.ScanRecord) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}
	return exportService.ExportRecords(cmd.OutOrStdout(), []domain.ScanRecord{rec.ForHistory()})
}

func outputScanTable(cmd *cobra.Command, rec *domain.ScanRecord) error {
	cert := rec.Certificate

	cmd.Printf("%s  (confidence %d%%", rec.FileName, rec.Confidence)
	if rec.OCRUsed {
		cmd.Printf(", OCR")
	}
	cmd.Println(")")
	cmd.Println()

	printField(cmd, "Certificate", cert.CertNumber)
	printField(cmd, "Type", string(cert.CertType))
	printField(cmd, "Marking", cert.Marking)
	printField(cmd, "Protection", cert.ProtectionCodes())
	for _, pt := range cert.ProtectionTypes {
		cmd.Printf("    %-18s %s\n", pt.Code, pt.Description)
	}
	printField(cmd, "Gas group", cert.GasGroup)
	printField(cmd, "Temp class", cert.TempClass)
	printField(cmd, "EPL", cert.EPL)
	printField(cmd, "Zone", cert.Zone)
	printField(cmd, "IP rating", cert.IPRating)
	printField(cmd, "Ambient", cert.AmbientTemp)
	printField(cmd, "Manufacturer", cert.Manufacturer)
	printField(cmd, "Equipment", cert.Equipment)
	printField(cmd, "Notified body", cert.NotifiedBody)
	printField(cmd, "Standard", cert.Standard)
	printField(cmd, "Category", cert.Category)
	printField(cmd, "Group", cert.Group)
	printField(cmd, "Issued", cert.IssueDate)
	printField(cmd, "Expires", cert.ExpiryDate)

	if cert.SpecialConditions != "" {
		cmd.Println()
		cmd.Println("Special conditions:")
		cmd.Println(cert.SpecialConditions)
	}

	return nil
}

// printField prints a label-value pair, skipping absent values.
func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	cmd.Printf("  %-18s %s\n", label+":", value)
}
