// Package messages defines the Bubbletea messages exchanged between the
// TUI application and its views.
package messages

import (
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

// ViewType identifies which view is active.
type ViewType int

const (
	// ViewHistory is the scan history list.
	ViewHistory ViewType = iota

	// ViewDetail shows a single scan's extracted certificate fields.
	ViewDetail

	// ViewHelp shows the keybinding reference.
	ViewHelp
)

// HistoryLoaded carries the result of loading scan history.
type HistoryLoaded struct {
	Records []domain.ScanRecord
	Err     error
}

// ScanSelected is emitted when the user picks a record from the history list.
type ScanSelected struct {
	Record domain.ScanRecord
}

// ViewChanged requests a switch to another view.
type ViewChanged struct {
	View ViewType
}

// HistoryCleared carries the result of clearing the scan history.
type HistoryCleared struct {
	Err error
}

// ErrorOccurred carries an error to the active view.
type ErrorOccurred struct {
	Err error
}

// Quit requests application shutdown.
type Quit struct{}
