package driving

import "github.com/custodia-labs/aidoc-cli/internal/core/domain"

// SettingsService manages client settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults for unset keys.
	Get() (*domain.ClientSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.ClientSettings) error

	// Set updates a single key given in its string form, e.g. "server.url".
	Set(key, value string) error

	// Value returns the effective value of key in its string form.
	Value(key string) (string, error)

	// Keys lists the supported keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.ClientSettings

	// Path returns where settings are persisted.
	Path() string
}
