// Package sqlite provides a SQLite-backed implementation of the scan
// history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files. Certificate records are stored as JSON in a single column; the
// history treats them as opaque values.
//
// # Data Location
//
// By default, the database is stored at ~/.exscan/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
