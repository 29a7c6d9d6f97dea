package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// configKeys are the recognised configuration keys and their meaning.
var configKeys = []struct {
	key  string
	help string
}{
	{"data_dir", "directory holding the scan history database"},
	{"watch_dir", "default directory for watch mode"},
	{"ocr_language", "tesseract language for the OCR fallback"},
	{"history_limit", "maximum retained scan records"},
	{"verbose", "enable debug logging by default"},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and change exscan configuration stored in ~/.exscan/config.toml.`,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	for _, entry := range configKeys {
		value, ok := configStore.Get(entry.key)
		if !ok {
			cmd.Printf("%-14s (unset)  %s\n", entry.key, entry.help)
			continue
		}
		cmd.Printf("%-14s %-8v %s\n", entry.key, value, entry.help)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if !isKnownConfigKey(key) {
		return fmt.Errorf("unknown configuration key %q", key)
	}

	// Store booleans and integers typed so GetBool/GetInt work.
	var value any = raw
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		value = b
	} else if n, err := strconv.Atoi(raw); err == nil {
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

func isKnownConfigKey(key string) bool {
	for _, entry := range configKeys {
		if entry.key == key {
			return true
		}
	}
	return false
}
