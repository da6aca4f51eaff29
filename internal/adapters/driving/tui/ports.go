// Package tui provides an interactive terminal user interface for lookup.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/lookup/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup answers search, default result and selection events.
	Lookup driving.LookupService

	// Navigation opens new-record pages. Optional.
	Navigation driving.NavigationService

	// Settings provides the lookup configuration.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	lookup driving.LookupService,
	navigation driving.NavigationService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Lookup:     lookup,
		Navigation: navigation,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
