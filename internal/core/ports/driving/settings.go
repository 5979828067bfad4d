package driving

import "github.com/custodia-labs/minigrep/internal/core/domain"

// SettingsService exposes the diagnostic settings stored on disk.
type SettingsService interface {
	// Get returns the current settings, falling back to defaults
	// for keys that are missing or malformed.
	Get() (*domain.Settings, error)
}
