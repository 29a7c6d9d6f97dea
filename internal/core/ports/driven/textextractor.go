package driven

import "context"

// ExtractResult is the output of document-to-text conversion.
type ExtractResult struct {
	// Text is the full plain text of the document. Page boundaries are
	// marked by a double line-break.
	Text string

	// OCRUsed indicates the extractor fell back to optical character
	// recognition because the document carried no usable text layer.
	OCRUsed bool
}

// TextExtractor converts a source document into a single plain-text string.
// Implementations may use digital text extraction, OCR, or both; the core
// does not know or care which was used beyond the OCRUsed flag.
type TextExtractor interface {
	// Extract produces the document text for the file at path.
	// Returns domain.ErrUnsupportedType for file types it cannot handle,
	// domain.ErrExtractionFailed when conversion fails and
	// domain.ErrEmptyDocument when conversion yields no text.
	Extract(ctx context.Context, path string) (*ExtractResult, error)

	// SupportedExtensions returns the lower-case file extensions this
	// extractor handles, including the leading dot.
	SupportedExtensions() []string
}
