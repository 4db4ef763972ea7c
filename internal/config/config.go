package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type Config struct {
	// Server
	Port        string
	Environment string
	CORSOrigins string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimeout  time.Duration

	// Auth
	SecretKey      string
	AccessTokenTTL time.Duration

	// Bootstrap superuser (initdb only)
	FirstSuperuserEmail    string
	FirstSuperuserPassword string

	// Observability
	SentryDSN        string
	LogRetentionDays int

	// Research augmentation providers (recognized, unused by this core)
	OpenAIAPIKey          string
	SemanticScholarAPIKey string
	BrowserlessAPIKey     string
}

func Load() *Config {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "research_assistant"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeout:  parseDuration(getEnv("DB_TIMEOUT", "5s"), 5*time.Second),

		SecretKey: getEnv("SECRET_KEY", ""),
		// 8 days, matching the default token lifetime of the API.
		AccessTokenTTL: parseDuration(getEnv("ACCESS_TOKEN_TTL", "192h"), 192*time.Hour),

		FirstSuperuserEmail:    getEnv("FIRST_SUPERUSER_EMAIL", "admin@example.com"),
		FirstSuperuserPassword: getEnv("FIRST_SUPERUSER_PASSWORD", ""),

		SentryDSN:        getEnv("SENTRY_DSN", ""),
		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),

		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		SemanticScholarAPIKey: getEnv("SEMANTIC_SCHOLAR_API_KEY", ""),
		BrowserlessAPIKey:     getEnv("BROWSERLESS_API_KEY", ""),
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

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
