package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/joho/godotenv"
)

const AppEnvKey = "APP_ENV"

func InitializeEnvFile(logger *log.Logger) {
	logger.Info("Initializing environment variables from .env file if present")

	if os.Getenv("SKIP_DOTENV") == "true" {
		logger.Info("Skipping .env file load (SKIP_DOTENV=true)")
		return
	}

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found or failed to load it", "error", err.Error())
		return
	}

	logger.Info("Environment variables loaded from .env file successfully")
}

func GetValueFromEnvironmentVariable(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func GetAppEnv() string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(AppEnvKey)))
}

func IsDevelopmentEnv(appEnv string) bool {
	switch strings.ToLower(strings.TrimSpace(appEnv)) {
	case "", "dev", "development", "local", "test", "testing":
		return true
	default:
		return false
	}
}

// ValidateNotionConfigAllowed refuses to boot a non-development environment without
// upstream credentials. Development environments start anyway and every submission
// fails with a configuration error until the values are provided.
func ValidateNotionConfigAllowed(appEnv string, cfg *NotionConfig) error {
	if cfg != nil && cfg.IsConfigured() {
		return nil
	}

	if IsDevelopmentEnv(appEnv) {
		return nil
	}

	return fmt.Errorf("NOTION_SECRET and NOTION_DB are required when %s=%q", AppEnvKey, strings.ToLower(strings.TrimSpace(appEnv)))
}

func sanitizeEnv(v string) string {
	s := strings.TrimSpace(v)

	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	return s
}
