// Package services implements the driving ports: the certificate parser
// (pattern-rule extraction, derivation and confidence scoring), the scan
// orchestrator and the CSV exporter.
//
// The parser is pure and stateless across invocations; all rule tables are
// compiled once at construction and only read afterwards, so a single
// instance is safe for concurrent use.
package services
