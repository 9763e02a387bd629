//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileLoggerSettings(mutate func(s *LoggerSettings)) *LoggerSettings {
	s := &LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/movie-catalog/web.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	mutate(s)
	return s
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name        string
		settings    *LoggerSettings
		errContains string
	}{
		{
			name:     "console logger",
			settings: &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole},
		},
		{
			name:     "critical level",
			settings: &LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole},
		},
		{
			name:     "console logger ignores rotation settings",
			settings: &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 1000},
		},
		{
			name:     "file logger with rotation",
			settings: fileLoggerSettings(func(s *LoggerSettings) {}),
		},
		{
			name:        "missing log level",
			settings:    &LoggerSettings{LogType: LogTypeConsole},
			errContains: "LoggerSettings",
		},
		{
			name:        "invalid log type",
			settings:    &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"},
			errContains: "LoggerSettings",
		},
		{
			name:        "file logger missing file path",
			settings:    fileLoggerSettings(func(s *LoggerSettings) { s.FilePath = "" }),
			errContains: "file path",
		},
		{
			name:        "max size too large",
			settings:    fileLoggerSettings(func(s *LoggerSettings) { s.MaxSize = 101 }),
			errContains: "max size",
		},
		{
			name:        "max backups missing",
			settings:    fileLoggerSettings(func(s *LoggerSettings) { s.MaxBackups = 0 }),
			errContains: "max backups",
		},
		{
			name:        "max age too large",
			settings:    fileLoggerSettings(func(s *LoggerSettings) { s.MaxAge = 366 }),
			errContains: "max age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
