package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Note that parsing itself never fails: unrecognisable input yields a record
// with absent fields. Errors here belong to the collaborators around the
// parser (text producers, stores).
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyDocument indicates the text producer returned no usable text.
	// The parser is not invoked for empty documents.
	ErrEmptyDocument = errors.New("document produced no text")

	// ErrExtractionFailed indicates the document could not be converted to
	// text at all (unreadable file, converter missing or crashed).
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrUnsupportedType indicates a file type no extractor handles.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrWatcherClosed indicates the directory watcher has been shut down.
	ErrWatcherClosed = errors.New("watcher closed")
)
