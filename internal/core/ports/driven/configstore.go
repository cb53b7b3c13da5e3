package driven

import "time"

// ConfigStore provides access to application configuration.
// Keys use dot notation for nested tables, e.g. "search.limit".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetDuration accepts Go duration strings ("250ms") and integer
	// milliseconds. Returns 0 if key doesn't exist or can't be parsed.
	GetDuration(key string) time.Duration

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
