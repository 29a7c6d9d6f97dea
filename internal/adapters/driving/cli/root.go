// Package cli provides the exscan command-line interface. It implements
// a driving adapter: commands translate flags and arguments into calls
// on the core services and format the results for the terminal.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driving"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
var (
	scanService   driving.ScanService
	exportService driving.ExportService
	configStore   driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "exscan",
	Short: "Extract structured data from Ex equipment certificates",
	Long: `exscan scans IECEx, ATEX and UKCA/UKEX certificate documents and
extracts the explosion-protection data into structured records:
certificate numbers, Ex markings, protection types, gas groups,
temperature classes, EPLs and more.

Each scan is scored for confidence and kept in a local history that
can be browsed interactively or exported to CSV.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices wires the core services into the CLI. Must be called
// before Execute.
func SetServices(scans driving.ScanService, export driving.ExportService, config driven.ConfigStore) {
	scanService = scans
	exportService = export
	configStore = config
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
