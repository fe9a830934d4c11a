package driven

// Configuration keys understood by the tool.
const (
	ConfigKeyDataDir  = "data_dir"  // where the SQLite database lives
	ConfigKeyPageSize = "page_size" // default catalog page size
	ConfigKeyVerbose  = "verbose"   // start with verbose logging enabled
)

// ConfigStore provides persistent tool configuration.
// Backed by a TOML file in the sitewright config directory.
type ConfigStore interface {
	// GetString retrieves a string configuration value, or "" when
	// the key is unset.
	GetString(key string) string

	// GetInt retrieves an integer configuration value, or 0 when the
	// key is unset.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value, or false when
	// the key is unset.
	GetBool(key string) bool

	// Set stores a configuration value and persists it. Unknown keys
	// are rejected.
	Set(key string, value any) error

	// Keys returns the known configuration keys.
	Keys() []string
}
