package driven

import (
	"context"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

// HistoryStore persists past scan records.
//
// The store keeps at most domain.HistoryLimit records; appending beyond the
// limit evicts the oldest. Records are treated as opaque values and listed
// most-recent-first. The raw document text is never stored.
type HistoryStore interface {
	// Append adds a record to history, evicting the oldest if full.
	Append(ctx context.Context, rec domain.ScanRecord) error

	// List returns all records, most recent first.
	List(ctx context.Context) ([]domain.ScanRecord, error)

	// Get retrieves a single record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.ScanRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
