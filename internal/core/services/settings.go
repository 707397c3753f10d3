package services

import (
	"fmt"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driven"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputFormat      = "output.format"
	keyOutputPretty      = "output.pretty"
	keyBatchWorkers      = "batch.workers"
	keyBatchLenient      = "batch.lenient"
	keyDictionaryEnabled = "dictionary.enabled"
	keyDictionaryDataDir = "dictionary.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Format: s.getFormat(defaults.Output.Format),
			Pretty: s.getBool(keyOutputPretty, defaults.Output.Pretty),
		},
		Batch: domain.BatchSettings{
			Workers: s.getInt(keyBatchWorkers, defaults.Batch.Workers),
			Lenient: s.getBool(keyBatchLenient, defaults.Batch.Lenient),
		},
		Dictionary: domain.DictionarySettings{
			Enabled: s.getBool(keyDictionaryEnabled, defaults.Dictionary.Enabled),
			DataDir: s.configStore.GetString(keyDictionaryDataDir), // No default - empty means ~/.obadh/data
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyOutputPretty, settings.Output.Pretty); err != nil {
		return fmt.Errorf("save output pretty: %w", err)
	}

	if err := s.configStore.Set(keyBatchWorkers, settings.Batch.Workers); err != nil {
		return fmt.Errorf("save batch workers: %w", err)
	}
	if err := s.configStore.Set(keyBatchLenient, settings.Batch.Lenient); err != nil {
		return fmt.Errorf("save batch lenient: %w", err)
	}

	if err := s.configStore.Set(keyDictionaryEnabled, settings.Dictionary.Enabled); err != nil {
		return fmt.Errorf("save dictionary enabled: %w", err)
	}
	if settings.Dictionary.DataDir != "" {
		if err := s.configStore.Set(keyDictionaryDataDir, settings.Dictionary.DataDir); err != nil {
			return fmt.Errorf("save dictionary data_dir: %w", err)
		}
	}

	return nil
}

// SetDefaultFormat updates the default output format.
func (s *SettingsService) SetDefaultFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid output format: %s", format)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Output.Format = format
	return s.Save(settings)
}

// SetOutputPretty toggles indented output for structured formats.
func (s *SettingsService) SetOutputPretty(pretty bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Output.Pretty = pretty
	return s.Save(settings)
}

// SetBatchWorkers updates the default batch worker count.
func (s *SettingsService) SetBatchWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("invalid worker count: %d", workers)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Batch.Workers = workers
	return s.Save(settings)
}

// SetBatchLenient updates the default batch error handling.
func (s *SettingsService) SetBatchLenient(lenient bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Batch.Lenient = lenient
	return s.Save(settings)
}

// SetDictionaryEnabled toggles exception dictionary lookups.
func (s *SettingsService) SetDictionaryEnabled(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Dictionary.Enabled = enabled
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
