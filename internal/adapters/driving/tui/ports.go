// Package tui provides an interactive terminal user interface for obadh.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Translit converts Roman text to Bengali.
	Translit driving.TransliterationService

	// Dictionary looks up exception overrides. Optional; the preview
	// works without it.
	Dictionary driving.DictionaryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	translit driving.TransliterationService,
	dictionary driving.DictionaryService,
) *Ports {
	return &Ports{
		Translit:   translit,
		Dictionary: dictionary,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Translit == nil {
		return ErrMissingTranslitService
	}
	return nil
}
