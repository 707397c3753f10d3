package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/Y3454R/obadh-engine/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists obadh settings to a TOML file. Dot-notation
// keys such as "output.format" and "batch.workers" map to TOML
// tables, so the file on disk reads as:
//
//	[output]
//	format = "json"
//
// Every Set writes the file; there is no separate flush step.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	values   map[string]any
}

// NewConfigStore opens the settings file under configDir, creating
// the directory when needed. An empty configDir means
// ~/.obadh/config.toml. A missing file is not an error; the store
// starts empty and the file appears on the first Set.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".obadh")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get reports whether key is present, returning the raw value.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns the string at key, or "" for absent or
// non-string values.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := val.(string)
	return str
}

// GetInt returns the integer at key. TOML integers unmarshal as
// int64; values set in-process may still be int.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool returns the boolean at key, or false for absent or
// non-boolean values.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := val.(bool)
	return b
}

// Set stores a value under key and writes the file immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persist()
}

// Path returns the location of the settings file.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// persist marshals the settings as nested TOML tables. Caller holds
// the lock. The file carries 0600 since the config directory is
// per-user.
func (s *ConfigStore) persist() error {
	data, err := toml.Marshal(expandKeys(s.values))
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads the settings file into the flat key map. A missing
// file leaves the store empty.
func (s *ConfigStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]any)

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var nested map[string]any
	if err := toml.Unmarshal(data, &nested); err != nil {
		return err
	}
	flattenInto(s.values, nested, "")
	return nil
}

// flattenInto collapses nested TOML tables to dot-notation keys:
// {"output": {"format": "json"}} becomes {"output.format": "json"}.
func flattenInto(dst map[string]any, src map[string]any, prefix string) {
	for key, value := range src {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flattenInto(dst, table, fullKey)
			continue
		}
		dst[fullKey] = value
	}
}

// expandKeys is the inverse of flattenInto: dot-notation keys become
// nested tables so the written TOML groups settings by section.
func expandKeys(flat map[string]any) map[string]any {
	nested := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := nested
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return nested
}
