package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driving"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// ScanService orchestrates document scans. The parser stays pure; this
// service owns everything around it: choosing a text extractor, attaching
// file name, timestamp and OCR flag, and appending to history.
type ScanService struct {
	parser     driving.Parser
	extractors []driven.TextExtractor
	history    driven.HistoryStore
}

// NewScanService creates a scan service.
// The history store is optional (can be nil); scans then go unrecorded.
func NewScanService(
	parser driving.Parser,
	extractors []driven.TextExtractor,
	history driven.HistoryStore,
) *ScanService {
	return &ScanService{
		parser:     parser,
		extractors: extractors,
		history:    history,
	}
}

// ScanFile extracts text from the document at path and parses it.
// Extraction failures surface as errors and leave the parser uninvoked;
// parsing itself cannot fail.
func (s *ScanService) ScanFile(ctx context.Context, path string) (*domain.ScanRecord, error) {
	logger.Section("Document Scan")
	logger.Debug("File: %s", path)

	extractor := s.extractorFor(path)
	if extractor == nil {
		return nil, fmt.Errorf("scan %s: %w", path, domain.ErrUnsupportedType)
	}

	result, err := extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	logger.Debug("Extracted %d characters (ocr=%t)", len(result.Text), result.OCRUsed)

	return s.ScanText(ctx, result.Text, filepath.Base(path), result.OCRUsed)
}

// ScanText parses already-extracted text and records the scan.
func (s *ScanService) ScanText(ctx context.Context, text, fileName string, ocrUsed bool) (*domain.ScanRecord, error) {
	cert := s.parser.Parse(text)
	rec := domain.ScanRecord{
		ID:          uuid.New().String(),
		FileName:    fileName,
		ScannedAt:   time.Now().UTC(),
		OCRUsed:     ocrUsed,
		Confidence:  s.parser.Confidence(cert),
		Certificate: cert,
	}

	logger.Info("Scan complete: %s (confidence %d)", fileName, rec.Confidence)

	if s.history != nil {
		if err := s.history.Append(ctx, rec.ForHistory()); err != nil {
			return nil, fmt.Errorf("recording scan: %w", err)
		}
	}

	return &rec, nil
}

// History returns past scans, most recent first.
func (s *ScanService) History(ctx context.Context) ([]domain.ScanRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	records, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return records, nil
}

// GetScan retrieves a single history record by ID.
func (s *ScanService) GetScan(ctx context.Context, id string) (*domain.ScanRecord, error) {
	if s.history == nil {
		return nil, domain.ErrNotFound
	}
	return s.history.Get(ctx, id)
}

// ClearHistory removes all history records.
func (s *ScanService) ClearHistory(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// extractorFor selects the extractor handling the file's extension.
func (s *ScanService) extractorFor(path string) driven.TextExtractor {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.extractors {
		for _, supported := range e.SupportedExtensions() {
			if supported == ext {
				return e
			}
		}
	}
	return nil
}
