package tui

import "errors"

// ErrMissingScanService indicates the TUI was constructed without a scan
// service.
var ErrMissingScanService = errors.New("tui: missing scan service")
