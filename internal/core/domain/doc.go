// Package domain contains the core business entities for exscan: the
// CertificateRecord produced by parsing, the ScanRecord stored in history,
// the static IEC 60079 knowledge tables and the domain error values.
//
// The domain layer has no dependencies on other packages in this module.
package domain
