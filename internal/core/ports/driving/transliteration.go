package driving

import (
	"context"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// TransliterationService converts Roman text to Bengali.
type TransliterationService interface {
	// Transliterate converts a line of Roman text to Bengali.
	// Input containing characters outside the allowed set fails with
	// domain.ErrInvalidCharacters.
	Transliterate(ctx context.Context, text string) (string, error)

	// Analyze converts a line and returns the full report: per-token
	// phonetic breakdown, output and stage timings.
	Analyze(ctx context.Context, text string) (*domain.Report, error)

	// Validate checks text against the allowed character set without
	// converting it.
	Validate(text string) error

	// Clean strips characters outside the allowed set.
	Clean(text string) string
}
