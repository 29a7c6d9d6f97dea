package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
)

// Store is a SQLite-backed scan history store.
type Store struct {
	db    *sql.DB
	path  string
	limit int
}

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.exscan/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".exscan", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:    db,
		path:  dbPath,
		limit: domain.HistoryLimit,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SetLimit overrides the history cap. Values below one are ignored.
func (s *Store) SetLimit(n int) {
	if n > 0 {
		s.limit = n
	}
}

// Append stores a scan record and evicts everything beyond the history cap,
// keeping only the most recent rows.
func (s *Store) Append(ctx context.Context, rec domain.ScanRecord) error {
	certJSON, err := json.Marshal(rec.Certificate)
	if err != nil {
		return fmt.Errorf("marshalling certificate: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scans (id, file_name, scanned_at, ocr_used, confidence, certificate)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			file_name = excluded.file_name,
			scanned_at = excluded.scanned_at,
			ocr_used = excluded.ocr_used,
			confidence = excluded.confidence,
			certificate = excluded.certificate
	`, rec.ID, rec.FileName, rec.ScannedAt, boolToInt(rec.OCRUsed), rec.Confidence, string(certJSON))
	if err != nil {
		return fmt.Errorf("saving scan: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM scans WHERE id NOT IN (
			SELECT id FROM scans ORDER BY scanned_at DESC, id LIMIT ?
		)
	`, s.limit)
	if err != nil {
		return fmt.Errorf("trimming history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// List returns all scan records, most recent first.
func (s *Store) List(ctx context.Context) ([]domain.ScanRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file_name, scanned_at, ocr_used, confidence, certificate
		FROM scans ORDER BY scanned_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying scans: %w", err)
	}
	defer rows.Close()

	var records []domain.ScanRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanRecordRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scans: %w", err)
	}

	return records, nil
}

// Get retrieves a scan record by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.ScanRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, file_name, scanned_at, ocr_used, confidence, certificate
		FROM scans WHERE id = ?
	`, id)

	var rec domain.ScanRecord
	var ocrUsed int
	var certJSON string
	if err := row.Scan(&rec.ID, &rec.FileName, &rec.ScannedAt, &ocrUsed, &rec.Confidence, &certJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning scan record: %w", err)
	}

	rec.OCRUsed = ocrUsed != 0
	if err := json.Unmarshal([]byte(certJSON), &rec.Certificate); err != nil {
		return nil, fmt.Errorf("unmarshaling certificate: %w", err)
	}

	return &rec, nil
}

// Clear removes all scan records.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scans")
	if err != nil {
		return fmt.Errorf("clearing scans: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// scanRecordRows scans a record from *sql.Rows.
func scanRecordRows(rows *sql.Rows) (*domain.ScanRecord, error) {
	var rec domain.ScanRecord
	var ocrUsed int
	var certJSON string

	if err := rows.Scan(&rec.ID, &rec.FileName, &rec.ScannedAt, &ocrUsed,
		&rec.Confidence, &certJSON); err != nil {
		return nil, fmt.Errorf("scanning scan record: %w", err)
	}

	rec.OCRUsed = ocrUsed != 0
	if err := json.Unmarshal([]byte(certJSON), &rec.Certificate); err != nil {
		return nil, fmt.Errorf("unmarshaling certificate: %w", err)
	}

	return &rec, nil
}

// boolToInt converts a bool to its SQLite integer form.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
