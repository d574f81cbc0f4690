package config

// Settings holds the daemon settings read from whkd.toml and WHKD_* variables.
// Bindings themselves live in the whkdrc.
type Settings struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
	// Watch reloads the whkdrc when it changes on disk.
	Watch bool `mapstructure:"watch" toml:"watch"`
	// StrictModifiers rejects unknown modifier names instead of ignoring them.
	StrictModifiers bool `mapstructure:"strict_modifiers" toml:"strict_modifiers"`
	// Quiet suppresses the startup summary.
	Quiet bool `mapstructure:"quiet" toml:"quiet"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days"`
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}
