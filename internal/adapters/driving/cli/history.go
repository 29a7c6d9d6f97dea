package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past scans",
	Long: `Lists the scan history, most recent first. The history keeps the
last 50 scans; older records are evicted automatically.`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single scan record",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history records",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output history as JSON")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	records, err := scanService.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No scans yet.")
		return nil
	}

	cmd.Printf("%-36s  %-24s  %-22s  %-5s  %s\n", "ID", "FILE", "CERT NUMBER", "CONF", "SCANNED")
	for _, rec := range records {
		certNumber := rec.Certificate.CertNumber
		if certNumber == "" {
			certNumber = "-"
		}
		cmd.Printf("%-36s  %-24s  %-22s  %4d%%  %s\n",
			rec.ID,
			rec.FileName,
			certNumber,
			rec.Confidence,
			rec.ScannedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	rec, err := scanService.GetScan(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no scan with id %s", args[0])
		}
		return fmt.Errorf("loading scan: %w", err)
	}

	return outputScanTable(cmd, rec)
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	if err := scanService.ClearHistory(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
