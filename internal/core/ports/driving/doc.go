// Package driving defines the interfaces that adapters call IN to the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters depend on these interfaces; core services
// implement them.
//
//   - Parser: pure text-to-record extraction plus confidence scoring
//   - ScanService: orchestrates extract → parse → annotate → history
//   - ExportService: CSV rendering of records and history
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, extractor or service package
package driving
