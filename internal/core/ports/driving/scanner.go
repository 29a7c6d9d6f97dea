package driving

import (
	"context"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

// ScanService orchestrates a full document scan: text extraction, parsing,
// confidence scoring, metadata annotation and history persistence.
type ScanService interface {
	// ScanFile extracts and parses the document at path.
	// The returned record still carries the raw text; the copy appended to
	// history does not.
	ScanFile(ctx context.Context, path string) (*domain.ScanRecord, error)

	// ScanText parses already-extracted text, bypassing the text producer.
	// ocrUsed is carried into the record metadata unchanged.
	ScanText(ctx context.Context, text, fileName string, ocrUsed bool) (*domain.ScanRecord, error)

	// History returns past scans, most recent first.
	History(ctx context.Context) ([]domain.ScanRecord, error)

	// GetScan retrieves a single history record by ID.
	GetScan(ctx context.Context, id string) (*domain.ScanRecord, error)

	// ClearHistory removes all history records.
	ClearHistory(ctx context.Context) error
}
