package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MaxTickerItems is the upper bound of the latest-news ticker
const MaxTickerItems = 30

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Homepage feed configuration
	Homepage HomepageConfig

	// Dashboard authentication
	Auth AuthConfig

	// Content event publishing
	Events EventsConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	MigrationsPath string
	MigrateDown    bool
	LogSQL         bool
}

// HomepageConfig holds limits for the public read paths
type HomepageConfig struct {
	NewsPerCategory int
	TickerLimit     int
}

// AuthConfig holds dashboard session settings.
// Tokens has the form "token:ROLE:user-id,token2:ROLE".
type AuthConfig struct {
	Tokens string
}

// EventsConfig holds kafka settings; publishing is disabled when Brokers is empty
type EventsConfig struct {
	Brokers []string
	Topic   string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			RequestTimeout:  getDurationEnv("SERVER_REQUEST_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           getEnv("DB_NAME", "news_portal"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:    getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
			MigrateDown:    getBoolEnv("MIGRATE_DOWN", false),
			LogSQL:         getBoolEnv("DB_LOG_SQL", false),
		},
		Homepage: HomepageConfig{
			NewsPerCategory: getIntEnv("HOMEPAGE_NEWS_PER_CATEGORY", 4),
			TickerLimit:     getIntEnv("TICKER_LIMIT", MaxTickerItems),
		},
		Auth: AuthConfig{
			Tokens: getEnv("AUTH_TOKENS", ""),
		},
		Events: EventsConfig{
			Brokers: getListEnv("KAFKA_BROKERS"),
			Topic:   getEnv("EVENTS_TOPIC", "news-portal.content"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// The ticker never shows more than MaxTickerItems headlines
	if cfg.Homepage.TickerLimit > MaxTickerItems {
		cfg.Homepage.TickerLimit = MaxTickerItems
	}
	if cfg.Homepage.TickerLimit < 1 {
		cfg.Homepage.TickerLimit = 1
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Homepage.NewsPerCategory < 1 {
		return fmt.Errorf("HOMEPAGE_NEWS_PER_CATEGORY must be positive")
	}
	if c.Homepage.TickerLimit < 1 || c.Homepage.TickerLimit > MaxTickerItems {
		return fmt.Errorf("TICKER_LIMIT must be between 1 and %d", MaxTickerItems)
	}
	if len(c.Events.Brokers) > 0 && c.Events.Topic == "" {
		return fmt.Errorf("EVENTS_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
