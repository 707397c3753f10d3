// Package output renders transliteration reports in the supported
// output formats.
package output

import (
	"fmt"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// Options control how a report is rendered.
type Options struct {
	// Pretty indents structured formats.
	Pretty bool

	// Verbose includes the per-token analysis where the format
	// supports it.
	Verbose bool
}

// Renderer converts a report to one output format.
type Renderer func(report *domain.Report, opts Options) (string, error)

// Registry maps output formats to their renderers.
type Registry struct {
	renderers map[domain.OutputFormat]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[domain.OutputFormat]Renderer),
	}
}

// Register adds a renderer for a format.
func (r *Registry) Register(format domain.OutputFormat, renderer Renderer) {
	r.renderers[format] = renderer
}

// Render formats a report in the requested format.
func (r *Registry) Render(format domain.OutputFormat, report *domain.Report, opts Options) (string, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return "", fmt.Errorf("%w: output format %q", domain.ErrInvalidInput, format)
	}
	return renderer(report, opts)
}

// Has returns true if a renderer is registered for the format.
func (r *Registry) Has(format domain.OutputFormat) bool {
	_, ok := r.renderers[format]
	return ok
}

// Formats returns all registered formats.
func (r *Registry) Formats() []domain.OutputFormat {
	formats := make([]domain.OutputFormat, 0, len(r.renderers))
	for format := range r.renderers {
		formats = append(formats, format)
	}
	return formats
}

// defaultRegistry holds the built-in renderers.
var defaultRegistry = NewRegistry()

func init() {
	RegisterDefaults(defaultRegistry)
}

// Render formats a report using the built-in renderers.
func Render(format domain.OutputFormat, report *domain.Report, opts Options) (string, error) {
	return defaultRegistry.Render(format, report, opts)
}
