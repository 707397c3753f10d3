package driving

import "github.com/Y3454R/obadh-engine/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultFormat updates the default output format.
	SetDefaultFormat(format domain.OutputFormat) error

	// SetOutputPretty toggles indented output for structured formats.
	SetOutputPretty(pretty bool) error

	// SetBatchWorkers updates the default batch worker count.
	SetBatchWorkers(workers int) error

	// SetBatchLenient updates the default batch error handling.
	SetBatchLenient(lenient bool) error

	// SetDictionaryEnabled toggles exception dictionary lookups.
	SetDictionaryEnabled(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
