package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// AppToken is the constant bearer token issued on login and accepted
	// by the gated report endpoints. It is shared by all sessions and
	// never expires; see domain.Credential for the explicit contract.
	AppToken string
	// HashedPassword is the bcrypt hash of the single shared password.
	HashedPassword string
	// HashedUsernames are bcrypt hashes of the closed set of allowed
	// usernames.
	HashedUsernames []string

	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APP_TOKEN", "")
	viper.SetDefault("HASHED_PASSWORD", "")
	viper.SetDefault("HASHED_USERNAMES", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AppToken = viper.GetString("APP_TOKEN")
	if cfg.AppToken == "" {
		return nil, fmt.Errorf("APP_TOKEN must be set")
	}

	cfg.HashedPassword = viper.GetString("HASHED_PASSWORD")
	if cfg.HashedPassword == "" {
		return nil, fmt.Errorf("HASHED_PASSWORD must be set")
	}

	cfg.HashedUsernames = splitAndTrim(viper.GetString("HASHED_USERNAMES"))
	if len(cfg.HashedUsernames) == 0 {
		return nil, fmt.Errorf("HASHED_USERNAMES must be set")
	}

	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func splitAndTrim(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
