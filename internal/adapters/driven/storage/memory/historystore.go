// Package memory provides in-memory implementations of driven storage
// ports, used in tests and as a fallback when no data directory is
// available.
package memory

import (
	"context"
	"sync"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Records are kept most-recent-first and capped at domain.HistoryLimit.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.ScanRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append adds a record at the front, evicting the oldest beyond the cap.
func (s *HistoryStore) Append(_ context.Context, rec domain.ScanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]domain.ScanRecord{rec}, s.records...)
	if len(s.records) > domain.HistoryLimit {
		s.records = s.records[:domain.HistoryLimit]
	}
	return nil
}

// List returns all records, most recent first.
func (s *HistoryStore) List(_ context.Context) ([]domain.ScanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ScanRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get retrieves a record by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.ScanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Clear removes all records.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
