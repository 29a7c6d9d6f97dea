package domain

import "time"

// HistoryLimit is the maximum number of scan records kept in history.
// The oldest records are evicted first.
const HistoryLimit = 50

// ScanRecord is a parsed certificate plus the metadata the orchestrator
// attaches before display and persistence. The Certificate inside is a
// terminal, read-only value.
type ScanRecord struct {
	// ID is the unique identifier for this scan.
	ID string `json:"id"`

	// FileName is the base name of the scanned source file.
	FileName string `json:"fileName"`

	// ScannedAt is when the scan ran.
	ScannedAt time.Time `json:"scannedAt"`

	// OCRUsed indicates the text producer fell back to OCR. The parser has
	// no visibility into this; it is carried alongside the result only.
	OCRUsed bool `json:"ocrUsed"`

	// Confidence is the extraction confidence in [0, 100].
	Confidence int `json:"confidence"`

	// Certificate is the extracted record. The Raw field is stripped before
	// the record enters history.
	Certificate CertificateRecord `json:"certificate"`
}

// ForHistory returns a copy of the record with the raw document text
// removed, as stored in the persisted history.
func (s ScanRecord) ForHistory() ScanRecord {
	s.Certificate.Raw = ""
	return s
}
