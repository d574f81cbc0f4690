package config

// Default configuration constants
const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days
)

// DefaultSettings returns the settings used when no whkd.toml exists.
func DefaultSettings() *Settings {
	return &Settings{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxLogBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
			Compress:   true,
		},
	}
}
