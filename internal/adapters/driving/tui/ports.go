// Package tui provides an interactive terminal browser for the scan
// history. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scans provides scan history access.
	Scans driving.ScanService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(scans driving.ScanService) *Ports {
	return &Ports{
		Scans: scans,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Scans == nil {
		return ErrMissingScanService
	}
	return nil
}
