package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Identity provider token verification.
	// AuthJWKSURL enables RS256 verification against the provider's key set.
	// When empty, AuthDevSecret switches verification to HS256 for local
	// development and tests.
	AuthJWKSURL   string
	AuthIssuer    string
	AuthAudience  string
	AuthDevSecret string

	// Admin allow-list: emails granted the admin role unconditionally.
	// Single source of truth, injected into the role resolver at startup.
	AdminEmails string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	// Not an error if .env is absent; production uses real env vars.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ganaderia_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AuthJWKSURL:   getEnv("AUTH_JWKS_URL", ""),
		AuthIssuer:    getEnv("AUTH_ISSUER", ""),
		AuthAudience:  getEnv("AUTH_AUDIENCE", ""),
		AuthDevSecret: getEnv("AUTH_DEV_SECRET", ""),

		AdminEmails: getEnv("ADMIN_EMAILS", "johanmora.jm@gmail.com"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// AdminEmailList returns the normalized (lowercased, trimmed) allow-list.
func (c *Config) AdminEmailList() []string {
	if c.AdminEmails == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(p))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
