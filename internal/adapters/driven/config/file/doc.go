// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage under ~/.exscan
//
// Recognised configuration keys:
//   - data_dir: directory for the scan history database
//   - watch_dir: default directory for watch mode
//   - ocr_language: tesseract language passed to OCR fallback
//   - history_limit: maximum retained scan records
//   - verbose: enable debug logging by default
package file
