package driving

import "github.com/omnera-dev/schematools/internal/core/domain"

// SettingsService resolves tool settings from configuration.
type SettingsService interface {
	// Get returns the configured settings, filling gaps with defaults.
	Get() (*domain.AppSettings, error)

	// Save persists settings to the config file.
	Save(settings *domain.AppSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are read from.
	ConfigPath() string
}
