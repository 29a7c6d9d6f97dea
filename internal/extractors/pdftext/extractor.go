// Package pdftext converts certificate documents into plain text.
//
// PDF files are converted with the poppler pdftotext tool. When a PDF
// carries no usable text layer (a scanned certificate), the extractor
// falls back to OCR: pages are rendered with pdftoppm and read with
// tesseract. Plain-text files and common image formats are handled
// directly.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// ErrOCRToolNotFound indicates tesseract is not installed.
var ErrOCRToolNotFound = errors.New("tesseract not found in PATH")

// minTextChars is the threshold below which a PDF's text layer is
// considered unusable and the OCR fallback kicks in. Scanned PDFs
// typically yield only page-break whitespace from pdftotext.
const minTextChars = 100

// defaultOCRLanguage is passed to tesseract when no language is configured.
const defaultOCRLanguage = "eng"

// imageExtensions are handled by tesseract directly, without a render step.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff"}

// CommandRunner executes an external command and returns its stdout.
// Abstracted for testability.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor produces plain text from PDF, text and image files.
type Extractor struct {
	runner      CommandRunner
	ocrLanguage string
}

// New creates a pdftext extractor using the real command runner.
func New() *Extractor {
	return NewWithRunner(execRunner{})
}

// NewWithRunner creates an extractor with a custom command runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{
		runner:      runner,
		ocrLanguage: defaultOCRLanguage,
	}
}

// SetOCRLanguage overrides the tesseract language (e.g. "eng", "deu").
// Empty values are ignored.
func (e *Extractor) SetOCRLanguage(lang string) {
	if lang != "" {
		e.ocrLanguage = lang
	}
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	exts := []string{".pdf", ".txt"}
	return append(exts, imageExtensions...)
}

// Extract converts the file at path into plain text.
func (e *Extractor) Extract(ctx context.Context, path string) (*driven.ExtractResult, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".txt":
		return e.extractPlainText(path)
	case ext == ".pdf":
		return e.extractPDF(ctx, path)
	case isImageExtension(ext):
		text, err := e.ocrImage(ctx, path)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: OCR produced no text from %s", domain.ErrEmptyDocument, filepath.Base(path))
		}
		return &driven.ExtractResult{Text: text, OCRUsed: true}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, ext)
	}
}

func (e *Extractor) extractPlainText(path string) (*driven.ExtractResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, filepath.Base(path))
	}
	return &driven.ExtractResult{Text: string(data)}, nil
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (*driven.ExtractResult, error) {
	if err := CheckAvailable(); err != nil {
		return nil, err
	}

	// -layout preserves the column structure of certificate tables,
	// which the field rules rely on for label/value separation.
	output, err := e.runner.Run(ctx, "pdftotext", "-layout", "-q", path, "-")
	if err != nil {
		return nil, fmt.Errorf("%w: pdftotext failed: %v", domain.ErrExtractionFailed, err)
	}

	text := string(output)
	if len(strings.TrimSpace(text)) >= minTextChars {
		return &driven.ExtractResult{Text: text}, nil
	}

	// Thin or empty text layer - treat as a scanned document.
	ocrText, err := e.ocrPDF(ctx, path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(ocrText) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, filepath.Base(path))
	}
	return &driven.ExtractResult{Text: ocrText, OCRUsed: true}, nil
}

// ocrPDF renders each page to an image and runs tesseract over them.
func (e *Extractor) ocrPDF(ctx context.Context, path string) (string, error) {
	if err := CheckOCRAvailable(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "exscan-ocr-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if _, err := e.runner.Run(ctx, "pdftoppm", "-r", "300", "-png", path, prefix); err != nil {
		return "", fmt.Errorf("%w: pdftoppm failed: %v", domain.ErrExtractionFailed, err)
	}

	pages, err := filepath.Glob(prefix + "*.png")
	if err != nil || len(pages) == 0 {
		return "", fmt.Errorf("%w: no pages rendered from %s", domain.ErrExtractionFailed, filepath.Base(path))
	}
	sort.Strings(pages)

	var sb strings.Builder
	for _, page := range pages {
		text, err := e.ocrImage(ctx, page)
		if err != nil {
			return "", err
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// ocrImage runs tesseract on a single image file.
func (e *Extractor) ocrImage(ctx context.Context, path string) (string, error) {
	if err := CheckOCRAvailable(); err != nil {
		return "", err
	}

	output, err := e.runner.Run(ctx, "tesseract", path, "stdout", "-l", e.ocrLanguage)
	if err != nil {
		return "", fmt.Errorf("%w: tesseract failed: %v", domain.ErrExtractionFailed, err)
	}
	return string(output), nil
}

func isImageExtension(ext string) bool {
	for _, candidate := range imageExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// CheckAvailable verifies pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// CheckOCRAvailable verifies tesseract is installed.
func CheckOCRAvailable() error {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return ErrOCRToolNotFound
	}
	return nil
}

// InstallInstructions returns user-facing guidance for installing the
// external tools this extractor depends on.
func InstallInstructions() string {
	return `pdftext requires external tools:

  pdftotext / pdftoppm (poppler):
    macOS:  brew install poppler
    Linux:  apt install poppler-utils

  tesseract (OCR fallback for scanned certificates):
    macOS:  brew install tesseract
    Linux:  apt install tesseract-ocr`
}
