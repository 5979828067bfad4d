package driven

// ConfigStore provides read access to the settings file.
// Keys use dot notation for nested tables, e.g. "diagnostics.color".
type ConfigStore interface {
	// GetString returns the string at key and whether it was present
	// with that type.
	GetString(key string) (string, bool)

	// GetBool returns the boolean at key and whether it was present
	// with that type.
	GetBool(key string) (bool, bool)

	// Path returns the settings file path.
	Path() string
}
