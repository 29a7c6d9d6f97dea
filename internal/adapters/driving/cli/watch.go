package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/extractors/office"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/extractors/pdftext"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and scan new documents",
	Long: `Watches a directory and scans every supported document dropped into
it. Results are printed as they arrive and added to the history.

With no argument the watch_dir configuration key is used. Stop with
Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else if configStore != nil {
		dir = configStore.GetString("watch_dir")
	}
	if dir == "" {
		return errors.New("no directory given and watch_dir not configured")
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	extensions := append(pdftext.New().SupportedExtensions(), office.New().SupportedExtensions()...)
	w := watcher.New(scanService, extensions)
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)

	err := w.Watch(ctx, dir, func(path string, rec *domain.ScanRecord, scanErr error) {
		if scanErr != nil {
			cmd.PrintErrf("✗ %s: %v\n", path, scanErr)
			return
		}
		certNumber := rec.Certificate.CertNumber
		if certNumber == "" {
			certNumber = "no certificate number"
		}
		cmd.Printf("✓ %s: %s (confidence %d%%)\n", rec.FileName, certNumber, rec.Confidence)
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
