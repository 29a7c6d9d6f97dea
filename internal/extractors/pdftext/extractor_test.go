package pdftext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
)

// mockRunner is a test double for CommandRunner. Outputs and errors are
// keyed by command name so a single scan can exercise the full
// pdftotext -> pdftoppm -> tesseract chain.
type mockRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   []string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, name)

	// pdftoppm writes page images rather than producing stdout.
	if name == "pdftoppm" && m.errs["pdftoppm"] == nil {
		prefix := args[len(args)-1]
		if err := os.WriteFile(prefix+"-1.png", []byte("fake png"), 0600); err != nil {
			return nil, err
		}
	}

	return m.outputs[name], m.errs[name]
}

func (m *mockRunner) called(name string) bool {
	for _, call := range m.calls {
		if call == name {
			return true
		}
	}
	return false
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.TextExtractor = (*Extractor)(nil)
}

func TestSupportedExtensions(t *testing.T) {
	extractor := New()
	exts := extractor.SupportedExtensions()

	assert.Contains(t, exts, ".pdf")
	assert.Contains(t, exts, ".txt")
	assert.Contains(t, exts, ".png")
	assert.Contains(t, exts, ".tiff")
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	extractor := New()

	result, err := extractor.Extract(context.Background(), "/path/to/file.docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Nil(t, result)
}

func TestExtract_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cert.txt")
	require.NoError(t, os.WriteFile(path, []byte("IECEx DEK 19.0042X\nEx db IIC T4 Gb"), 0600))

	extractor := New()
	result, err := extractor.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, result.OCRUsed)
	assert.Contains(t, result.Text, "IECEx DEK 19.0042X")
}

func TestExtract_PlainTextEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n  "), 0600))

	extractor := New()
	result, err := extractor.Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
	assert.Nil(t, result)
}

func TestExtract_PlainTextMissingFile(t *testing.T) {
	extractor := New()

	result, err := extractor.Extract(context.Background(), "/nonexistent/cert.txt")
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Nil(t, result)
}

func TestExtract_PDFWithTextLayer(t *testing.T) {
	if err := CheckAvailable(); err != nil {
		t.Skip("pdftotext not in PATH, skipping mock runner test")
	}

	runner := &mockRunner{outputs: map[string][]byte{
		"pdftotext": []byte(strings.Repeat("IECEx certificate body text. ", 10)),
	}}
	extractor := NewWithRunner(runner)

	result, err := extractor.Extract(context.Background(), "/path/to/cert.pdf")
	require.NoError(t, err)
	assert.False(t, result.OCRUsed)
	assert.Contains(t, result.Text, "IECEx certificate body")
	assert.False(t, runner.called("tesseract"))
}

func TestExtract_PDFFallsBackToOCR(t *testing.T) {
	if err := CheckAvailable(); err != nil {
		t.Skip("pdftotext not in PATH, skipping mock runner test")
	}
	if err := CheckOCRAvailable(); err != nil {
		t.Skip("tesseract not in PATH, skipping OCR fallback test")
	}

	// pdftotext yields near-nothing, tesseract yields the real text.
	runner := &mockRunner{outputs: map[string][]byte{
		"pdftotext": []byte("  \n"),
		"tesseract": []byte("Ex db IIC T4 Gb scanned text"),
	}}
	extractor := NewWithRunner(runner)

	result, err := extractor.Extract(context.Background(), "/path/to/scan.pdf")
	require.NoError(t, err)
	assert.True(t, result.OCRUsed)
	assert.Contains(t, result.Text, "Ex db IIC T4 Gb")
	assert.True(t, runner.called("pdftoppm"))
	assert.True(t, runner.called("tesseract"))
}

func TestExtract_PDFRunnerError(t *testing.T) {
	if err := CheckAvailable(); err != nil {
		t.Skip("pdftotext not in PATH, skipping mock runner test")
	}

	runner := &mockRunner{errs: map[string]error{
		"pdftotext": errors.New("pdftotext crashed"),
	}}
	extractor := NewWithRunner(runner)

	result, err := extractor.Extract(context.Background(), "/path/to/cert.pdf")
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Nil(t, result)
}

func TestExtract_Image(t *testing.T) {
	if err := CheckOCRAvailable(); err != nil {
		t.Skip("tesseract not in PATH, skipping image OCR test")
	}

	runner := &mockRunner{outputs: map[string][]byte{
		"tesseract": []byte("ATEX certificate photo text"),
	}}
	extractor := NewWithRunner(runner)

	result, err := extractor.Extract(context.Background(), "/path/to/photo.jpg")
	require.NoError(t, err)
	assert.True(t, result.OCRUsed)
	assert.Contains(t, result.Text, "ATEX certificate photo text")
}

func TestSetOCRLanguage(t *testing.T) {
	extractor := New()
	assert.Equal(t, defaultOCRLanguage, extractor.ocrLanguage)

	extractor.SetOCRLanguage("deu")
	assert.Equal(t, "deu", extractor.ocrLanguage)

	extractor.SetOCRLanguage("")
	assert.Equal(t, "deu", extractor.ocrLanguage)
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "pdftotext")
	assert.Contains(t, instructions, "tesseract")
	assert.Contains(t, instructions, "apt install poppler-utils")
}

func TestErrPDFToolNotFound(t *testing.T) {
	assert.Error(t, ErrPDFToolNotFound)
	assert.Contains(t, ErrPDFToolNotFound.Error(), "pdftotext")
}
