// Command exscan extracts structured explosion-protection data from
// IECEx, ATEX and UKCA certificate documents.
package main

import (
	"fmt"
	"os"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driven/config/file"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driven/storage/sqlite"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driving/cli"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/services"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/extractors/office"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/extractors/pdftext"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if configStore.GetBool("verbose") {
		logger.SetVerbose(true)
	}

	history, err := sqlite.NewStore(configStore.GetString("data_dir"))
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer history.Close()
	history.SetLimit(configStore.GetInt("history_limit"))

	extractor := pdftext.New()
	extractor.SetOCRLanguage(configStore.GetString("ocr_language"))
	extractors := []driven.TextExtractor{extractor, office.New()}

	parser := services.NewParser()
	scanService := services.NewScanService(parser, extractors, history)
	exportService := services.NewExportService(scanService)

	cli.SetVersion(version)
	cli.SetServices(scanService, exportService, configStore)

	return cli.Execute()
}
