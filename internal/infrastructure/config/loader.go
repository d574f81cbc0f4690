package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Manager loads daemon settings from whkd.toml and WHKD_* environment variables.
type Manager struct {
	settings *Settings
	viper    *viper.Viper
	mu       sync.RWMutex
}

// NewManager creates a settings manager that looks for whkd.toml in dir.
// An empty dir disables the file and only the environment is read.
func NewManager(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName(settingsName)
	v.SetConfigType(settingsFormat)
	if dir != "" {
		v.AddConfigPath(dir)
	}

	// WHKD_WATCH, WHKD_STRICT_MODIFIERS, WHKD_LOGGING_LEVEL, ...
	v.SetEnvPrefix("WHKD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms for the logging settings.
	if err := v.BindEnv("logging.level", "WHKD_LOGGING_LEVEL", "WHKD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WHKD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WHKD_LOGGING_FORMAT", "WHKD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WHKD_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// BindFlags binds command line flags to settings keys. A flag that was set on
// the command line wins over the environment and the file.
func (m *Manager) BindFlags(flags map[string]*pflag.Flag) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := m.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", flag.Name, err)
		}
	}
	return nil
}

// Load reads the settings file if present, applies the environment and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read settings file %s: %w", m.viper.ConfigFileUsed(), err)
		}
	}

	settings := &Settings{}
	if err := m.viper.Unmarshal(settings); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", m.viper.ConfigFileUsed(), err)
	}
	settings.Logging.Level = strings.ToLower(strings.TrimSpace(settings.Logging.Level))
	settings.Logging.Format = strings.ToLower(strings.TrimSpace(settings.Logging.Format))

	if err := validateSettings(settings); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.settings = settings
	return nil
}

// Get returns a copy of the loaded settings, or the defaults before Load.
func (m *Manager) Get() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return DefaultSettings()
	}
	settingsCopy := *m.settings
	return &settingsCopy
}

// ConfigFileUsed returns the settings file that was read, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults registers every key so the environment can override it.
func (m *Manager) setDefaults() {
	defaults := DefaultSettings()

	m.viper.SetDefault("watch", defaults.Watch)
	m.viper.SetDefault("strict_modifiers", defaults.StrictModifiers)
	m.viper.SetDefault("quiet", defaults.Quiet)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
