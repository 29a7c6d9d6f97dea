package driving

import (
	"context"
	"io"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

// ExportService renders scan records as CSV.
//
// The column order is fixed; sequence-valued fields are flattened by joining
// element codes with "; ", every value is double-quote-enclosed with internal
// quotes doubled, and absent values render as the empty string.
type ExportService interface {
	// ExportHistory writes the full history as CSV, header first.
	ExportHistory(ctx context.Context, w io.Writer) error

	// ExportRecords writes the given records as CSV, header first.
	ExportRecords(w io.Writer, records []domain.ScanRecord) error
}
