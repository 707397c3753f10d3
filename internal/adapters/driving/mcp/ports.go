package mcp

import (
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Translit converts Roman text to Bengali.
	Translit driving.TransliterationService

	// Dictionary manages the exceptions dictionary.
	Dictionary driving.DictionaryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Translit == nil {
		return ErrMissingTranslitService
	}
	// Dictionary is optional; the exceptions resource degrades to an
	// empty list without it.
	return nil
}
