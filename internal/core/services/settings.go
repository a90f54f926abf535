package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyServerURL         = "server.url"
	KeyServerTimeout     = "server.timeout_seconds"
	KeyServerRateLimit   = "server.rate_limit"
	KeyServerBurst       = "server.burst"
	KeySessionBackend    = "session.backend"
	KeySessionClearOn401 = "session.clear_on_unauthorized"
	KeyExportDir         = "export.dir"
	KeyLogFile           = "log.file"
)

// settingKeys lists the supported keys in display order.
var settingKeys = []string{
	KeyServerURL,
	KeyServerTimeout,
	KeyServerRateLimit,
	KeyServerBurst,
	KeySessionBackend,
	KeySessionClearOn401,
	KeyExportDir,
	KeyLogFile,
}

// SettingsService manages client settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.ClientSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultClientSettings()

	settings := &domain.ClientSettings{
		Server: domain.ServerSettings{
			URL:            strings.TrimRight(s.getString(KeyServerURL, defaults.Server.URL), "/"),
			TimeoutSeconds: s.getPositiveInt(KeyServerTimeout, defaults.Server.TimeoutSeconds),
			RateLimit:      s.getNonNegativeInt(KeyServerRateLimit, defaults.Server.RateLimit),
			Burst:          s.getNonNegativeInt(KeyServerBurst, defaults.Server.Burst),
		},
		Session: domain.SessionSettings{
			Backend:             s.getBackend(defaults.Session.Backend),
			ClearOnUnauthorized: s.getBool(KeySessionClearOn401, defaults.Session.ClearOnUnauthorized),
		},
		Export: domain.ExportSettings{
			Dir: s.configStore.GetString(KeyExportDir),
		},
		Log: domain.LogSettings{
			File: s.configStore.GetString(KeyLogFile),
		},
	}

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.ClientSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyServerURL, settings.Server.URL},
		{KeyServerTimeout, settings.Server.TimeoutSeconds},
		{KeyServerRateLimit, settings.Server.RateLimit},
		{KeyServerBurst, settings.Server.Burst},
		{KeySessionBackend, settings.Session.Backend.String()},
		{KeySessionClearOn401, settings.Session.ClearOnUnauthorized},
		{KeyExportDir, settings.Export.Dir},
		{KeyLogFile, settings.Log.File},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single key from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyServerURL:
		settings.Server.URL = strings.TrimRight(strings.TrimSpace(value), "/")
	case KeyServerTimeout:
		settings.Server.TimeoutSeconds, err = parseInt(key, value)
	case KeyServerRateLimit:
		settings.Server.RateLimit, err = parseInt(key, value)
	case KeyServerBurst:
		settings.Server.Burst, err = parseInt(key, value)
	case KeySessionBackend:
		settings.Session.Backend = domain.SessionBackend(strings.ToLower(strings.TrimSpace(value)))
	case KeySessionClearOn401:
		settings.Session.ClearOnUnauthorized, err = strconv.ParseBool(value)
		if err != nil {
			err = fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
	case KeyExportDir:
		settings.Export.Dir = strings.TrimSpace(value)
	case KeyLogFile:
		settings.Log.File = strings.TrimSpace(value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Value returns the effective value of key in its string form.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case KeyServerURL:
		return settings.Server.URL, nil
	case KeyServerTimeout:
		return strconv.Itoa(settings.Server.TimeoutSeconds), nil
	case KeyServerRateLimit:
		return strconv.Itoa(settings.Server.RateLimit), nil
	case KeyServerBurst:
		return strconv.Itoa(settings.Server.Burst), nil
	case KeySessionBackend:
		return settings.Session.Backend.String(), nil
	case KeySessionClearOn401:
		return strconv.FormatBool(settings.Session.ClearOnUnauthorized), nil
	case KeyExportDir:
		return settings.Export.Dir, nil
	case KeyLogFile:
		return settings.Log.File, nil
	}
	return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}

// Keys lists the supported keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.ClientSettings {
	return domain.DefaultClientSettings()
}

// Path returns where settings are persisted.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.SessionBackend) domain.SessionBackend {
	backend := domain.SessionBackend(s.configStore.GetString(KeySessionBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}
