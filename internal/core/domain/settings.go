package domain

// OutputSettings holds default rendering behaviour.
type OutputSettings struct {
	// Format is the default output format.
	Format OutputFormat

	// Pretty indents structured output.
	Pretty bool
}

// BatchSettings holds batch processing configuration.
type BatchSettings struct {
	// Workers is the number of parallel workers. Zero means one
	// worker per CPU.
	Workers int

	// Lenient strips invalid characters instead of failing lines.
	Lenient bool
}

// DictionarySettings holds exceptions dictionary configuration.
type DictionarySettings struct {
	// Enabled turns the persistent dictionary on.
	Enabled bool

	// DataDir is the directory for the dictionary database.
	// Empty means ~/.obadh/data.
	DataDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Output holds rendering defaults.
	Output OutputSettings

	// Batch holds batch processing defaults.
	Batch BatchSettings

	// Dictionary holds exceptions dictionary configuration.
	Dictionary DictionarySettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The dictionary is disabled by default so the engine stays fully
// deterministic until a user opts in.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Format: OutputFormatText,
			Pretty: false,
		},
		Batch: BatchSettings{
			Workers: 0,
			Lenient: false,
		},
		Dictionary: DictionarySettings{
			Enabled: false,
			DataDir: "",
		},
	}
}
