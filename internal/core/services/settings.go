package services

import (
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDiagnosticsColor   = "diagnostics.color"
	keyDiagnosticsVerbose = "diagnostics.verbose"
)

// SettingsService reads application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	return &domain.Settings{
		Color:   s.getColorMode(defaults.Color),
		Verbose: s.getBool(keyDiagnosticsVerbose, defaults.Verbose),
	}, nil
}

func (s *SettingsService) getColorMode(defaultVal domain.ColorMode) domain.ColorMode {
	raw, ok := s.configStore.GetString(keyDiagnosticsColor)
	if !ok || raw == "" {
		return defaultVal
	}
	mode, ok := domain.ParseColorMode(raw)
	if !ok {
		logger.Warn("Ignoring unknown %s %q in %s", keyDiagnosticsColor, raw, s.configStore.Path())
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if v, ok := s.configStore.GetBool(key); ok {
		return v
	}
	return defaultVal
}
