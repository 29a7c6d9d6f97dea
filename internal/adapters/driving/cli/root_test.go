package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

// mockScanService returns canned records for CLI tests.
type mockScanService struct {
	records    []domain.ScanRecord
	scanErr    error
	cleared    bool
	lastPath   string
	lastText   string
	historyErr error
}

func (m *mockScanService) ScanFile(_ context.Context, path string) (*domain.ScanRecord, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	m.lastPath = path
	rec := sampleScanRecord("scan-1")
	return &rec, nil
}

func (m *mockScanService) ScanText(_ context.Context, text, _ string, _ bool) (*domain.ScanRecord, error) {
	m.lastText = text
	rec := sampleScanRecord("scan-1")
	return &rec, nil
}

func (m *mockScanService) History(context.Context) ([]domain.ScanRecord, error) {
	return m.records, m.historyErr
}

func (m *mockScanService) GetScan(_ context.Context, id string) (*domain.ScanRecord, error) {
	for _, rec := range m.records {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockScanService) ClearHistory(context.Context) error {
	m.cleared = true
	return nil
}

// mockExportService writes a fixed CSV header.
type mockExportService struct {
	exported bool
}

func (m *mockExportService) ExportHistory(_ context.Context, w io.Writer) error {
	m.exported = true
	_, err := fmt.Fprintln(w, `"certNumber","certType"`)
	return err
}

func (m *mockExportService) ExportRecords(w io.Writer, records []domain.ScanRecord) error {
	_, err := fmt.Fprintf(w, "\"certNumber\",\"certType\"\n%d row(s)\n", len(records))
	return err
}

func sampleScanRecord(id string) domain.ScanRecord {
	return domain.ScanRecord{
		ID:         id,
		FileName:   "pump-cert.pdf",
		ScannedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Confidence: 80,
		Certificate: domain.CertificateRecord{
			CertNumber: "IECEx DEK 19.0042X",
			CertType:   domain.CertTypeIECEx,
			Marking:    "Ex db IIC T4 Gb",
			ProtectionTypes: []domain.ProtectionType{
				{Code: "db", BaseType: "d", Level: "b", Description: "Flameproof enclosure"},
			},
			GasGroup:  "IIC",
			TempClass: "T4",
			EPL:       "Gb",
			Zone:      "Zone 1 (derived from EPL)",
		},
	}
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices() func() {
	oldScan, oldExport := scanService, exportService
	scanService = &mockScanService{records: []domain.ScanRecord{sampleScanRecord("scan-1")}}
	exportService = &mockExportService{}
	return func() {
		scanService = oldScan
		exportService = oldExport
	}
}
