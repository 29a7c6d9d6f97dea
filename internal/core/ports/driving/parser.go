package driving

import "github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"

// Parser extracts structured certificate data from document text.
//
// Parse is a pure function: no I/O, no shared mutable state, identical
// results for identical input. It is safe to call concurrently. Garbled or
// unrelated input is not an error; unrecognised fields stay absent.
type Parser interface {
	// Parse extracts a certificate record from the document text.
	Parse(text string) domain.CertificateRecord

	// Confidence scores a finished record in [0, 100] based on which
	// weighted fields are present.
	Confidence(rec domain.CertificateRecord) int
}
