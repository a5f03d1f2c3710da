package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI.
const (
	EnvSettingsPath = "EXPLORER_SETTINGS"
	EnvLogLevel     = "EXPLORER_LOG_LEVEL"
)

// LoadEnv loads a .env file from the working directory when one exists.
// Variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

// SettingsPath returns the settings path from the environment, or def.
func SettingsPath(def string) string {
	if v := os.Getenv(EnvSettingsPath); v != "" {
		return v
	}

	return def
}

// ApplyEnv overrides settings with environment values.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.Logging.Level = v
	}
}
