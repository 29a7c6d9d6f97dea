package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driving"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// csvColumns is the fixed, ordered export column list. Consumers depend on
// this exact order; do not reorder.
var csvColumns = []string{
	"certNumber", "certType", "marking", "gasGroup", "tempClass", "epl",
	"zone", "ipRating", "ambientTemp", "manufacturer", "equipment",
	"notifiedBody", "issueDate", "expiryDate", "category", "group",
	"standard", "specialConditions", "fileName", "scannedAt",
}

// ExportService renders scan records as CSV.
//
// encoding/csv is deliberately not used here: the export contract requires
// every value to be quote-enclosed, including empty ones, while the stdlib
// writer quotes only when necessary.
type ExportService struct {
	scans driving.ScanService
}

// NewExportService creates an export service backed by the scan history.
func NewExportService(scans driving.ScanService) *ExportService {
	return &ExportService{scans: scans}
}

// ExportHistory writes the full scan history as CSV, header first.
func (s *ExportService) ExportHistory(ctx context.Context, w io.Writer) error {
	records, err := s.scans.History(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return s.ExportRecords(w, records)
}

// ExportRecords writes the given records as CSV, header first. Absent
// values render as empty (quoted) strings.
func (s *ExportService) ExportRecords(w io.Writer, records []domain.ScanRecord) error {
	if err := writeCSVRow(w, csvColumns); err != nil {
		return err
	}
	for i := range records {
		if err := writeCSVRow(w, recordCSVValues(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// recordCSVValues flattens a scan record into the fixed column order.
func recordCSVValues(rec *domain.ScanRecord) []string {
	c := &rec.Certificate
	return []string{
		c.CertNumber, string(c.CertType), c.Marking, c.GasGroup, c.TempClass,
		c.EPL, c.Zone, c.IPRating, c.AmbientTemp, c.Manufacturer, c.Equipment,
		c.NotifiedBody, c.IssueDate, c.ExpiryDate, c.Category, c.Group,
		c.Standard, c.SpecialConditions, rec.FileName,
		rec.ScannedAt.UTC().Format(time.RFC3339),
	}
}

// writeCSVRow writes one row with every value double-quote-enclosed and
// internal quotes doubled.
func writeCSVRow(w io.Writer, values []string) error {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	if _, err := io.WriteString(w, strings.Join(quoted, ",")+"\n"); err != nil {
		return fmt.Errorf("writing csv row: %w", err)
	}
	return nil
}
