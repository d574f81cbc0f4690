package config

import (
	"fmt"
	"strings"

	"github.com/bnema/whkd/internal/logging"
)

// validateSettings checks every setting and reports all problems at once.
func validateSettings(s *Settings) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(&s.Logging)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(l *LoggingConfig) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(l.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	switch l.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if l.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if l.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if l.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}
