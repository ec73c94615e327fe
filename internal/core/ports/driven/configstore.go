package driven

// ConfigStore provides access to the tool configuration. Keys are flattened
// with dots ("refs.target"); implementations handle persistence and type
// conversion.
type ConfigStore interface {
	// Get returns the raw value under key and whether it exists.
	Get(key string) (any, bool)

	// GetString returns the string under key, or "" if missing or not a string.
	GetString(key string) string

	// GetInt returns the integer under key, or 0 if missing or not a number.
	GetInt(key string) int

	// GetBool returns the bool under key, or false if missing or not a bool.
	GetBool(key string) bool

	// GetStringMap returns every string value stored under prefix,
	// keyed by the remainder of the key after "prefix.".
	GetStringMap(prefix string) map[string]string

	// Set stores a value. File-backed stores persist it immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load reads the configuration from storage.
	Load() error

	// Path returns where the configuration is stored.
	Path() string
}
