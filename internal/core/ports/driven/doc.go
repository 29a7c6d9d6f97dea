// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - TextExtractor: converts a source document into plain text
//   - HistoryStore: persists the bounded scan history
//   - ConfigStore: application configuration
//
// The parser itself has no driven ports: it is a pure function over the
// document text and the in-process knowledge tables.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
