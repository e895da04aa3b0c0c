package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds application and database settings.
type Config struct {
	AppEnv   string
	AppPort  string
	LogLevel string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBTimeZone  string
	DBLogSQL    bool
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	return &Config{
		AppEnv:      strings.ToLower(getEnvOrDefault("APP_ENV", EnvDevelopment)),
		AppPort:     getEnvOrDefault("APP_PORT", "3000"),
		LogLevel:    strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:      getEnvOrDefault("DB_PORT", "5432"),
		DBUser:      getEnvOrDefault("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnvOrDefault("DB_NAME", "dreach"),
		DBSSLMode:   getEnvOrDefault("DB_SSLMODE", "disable"),
		DBTimeZone:  getEnvOrDefault("DB_TIMEZONE", "UTC"),
		DBLogSQL:    parseBoolEnv(os.Getenv("DB_LOG_SQL")),
	}
}

// IsProduction reports whether APP_ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// DSN returns DATABASE_URL when set, otherwise builds a key/value DSN from the DB_* variables.
func (c *Config) DSN() (string, error) {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL, nil
	}
	if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
		return "", fmt.Errorf("incomplete database settings: DB_HOST, DB_NAME and DB_USER are required")
	}
	if _, err := strconv.Atoi(c.DBPort); err != nil {
		return "", fmt.Errorf("invalid DB_PORT %q: %w", c.DBPort, err)
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode, c.DBTimeZone)
	if c.DBPassword != "" {
		dsn += " password=" + c.DBPassword
	}
	return dsn, nil
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}
