package driven

// ConfigStore holds the persisted application settings as flat
// dot-notation keys ("output.format", "batch.workers",
// "dictionary.enabled"). SettingsService is its only consumer; the
// typed getters cover exactly the value kinds that AppSettings
// stores.
type ConfigStore interface {
	// Get reports whether key is present, returning the raw value.
	Get(key string) (any, bool)

	// GetString returns the string at key, or "" when the key is
	// absent or holds another type.
	GetString(key string) string

	// GetInt returns the integer at key, or 0 when the key is
	// absent or holds another type.
	GetInt(key string) int

	// GetBool returns the boolean at key, or false when the key is
	// absent or holds another type.
	GetBool(key string) bool

	// Set stores a value under key. Implementations persist
	// immediately.
	Set(key string, value any) error
}
