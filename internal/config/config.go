package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Password reset
	ResetTokenExpiry time.Duration
	BcryptCost       int

	// Server
	Port            string
	CORSOrigins     string
	DefaultLanguage string

	// Pagination
	DefaultPageLimit int
	MaxPageLimit     int

	// Observability
	LogRetention time.Duration
	SentryDSN    string
	AppEnv       string
}

// Load reads the configuration from the environment. Outside production a
// .env file in the working directory is loaded first.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to load .env file", "error", err)
		}
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "workforce_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "data/workforce.db"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		ResetTokenExpiry: parseDuration(getEnv("RESET_TOKEN_EXPIRY", "30m"), 30*time.Minute),
		BcryptCost:       parseInt(getEnv("BCRYPT_COST", ""), bcrypt.DefaultCost),

		Port:            getEnv("PORT", "8080"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),

		DefaultPageLimit: parseInt(getEnv("DEFAULT_PAGE_LIMIT", ""), 10),
		MaxPageLimit:     parseInt(getEnv("MAX_PAGE_LIMIT", ""), 100),

		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h"), 720*time.Hour),
		SentryDSN:    getEnv("SENTRY_DSN", ""),
		AppEnv:       getEnv("APP_ENV", "development"),
	}
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	switch c.DBDriver {
	case "postgres", "mysql":
		if c.DBPassword == "" {
			return errors.New("DB_PASSWORD environment variable is required")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "mysql":
		return c.DBUser + ":" + c.DBPassword +
			"@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName +
			"?charset=utf8mb4&parseTime=True&loc=UTC"
	case "sqlite":
		return c.DBPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		return "host=" + c.DBHost +
			" user=" + c.DBUser +
			" password=" + c.DBPassword +
			" dbname=" + c.DBName +
			" port=" + c.DBPort +
			" sslmode=" + c.DBSSLMode +
			" TimeZone=UTC"
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
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
