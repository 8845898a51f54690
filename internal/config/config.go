package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Engine   EngineConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// EngineConfig carries the statement engine policy knobs. These are explicit
// configuration so the same binary can serve markets with different
// settlement conventions.
type EngineConfig struct {
	// DefaultDisplayCurrency is used when neither the request nor the owner
	// specifies one.
	DefaultDisplayCurrency string

	// BookingStatuses selects which bookings enter a statement run.
	BookingStatuses []string

	// ConversionWorkers bounds concurrent currency conversions per run.
	ConversionWorkers int

	// ExchangeRates seeds the in-process rate table, formatted as
	// "USD:GHS=15.50,EUR:GHS=16.80".
	ExchangeRates map[string]decimal.Decimal
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads configuration from the environment, preferring a local .env
// file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "backoffice_user"),
			Password:        getEnv("DB_PASSWORD", "backoffice_password"),
			Name:            getEnv("DB_NAME", "backoffice_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Engine: EngineConfig{
			DefaultDisplayCurrency: getEnv("ENGINE_DEFAULT_CURRENCY", "GHS"),
			BookingStatuses:        getListEnv("ENGINE_BOOKING_STATUSES", []string{"completed"}),
			ConversionWorkers:      getIntEnv("ENGINE_CONVERSION_WORKERS", 8),
			ExchangeRates:          getRatesEnv("ENGINE_EXCHANGE_RATES"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

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

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// getRatesEnv parses "USD:GHS=15.50,EUR:GHS=16.80" into a rate table.
// Malformed entries are skipped with a warning rather than failing startup.
func getRatesEnv(key string) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal)

	value := os.Getenv(key)
	if value == "" {
		return rates
	}

	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		pair, rateStr, found := strings.Cut(entry, "=")
		if !found {
			log.Printf("WARNING: skipping malformed exchange rate entry %q", entry)
			continue
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(rateStr))
		if err != nil || rate.LessThanOrEqual(decimal.Zero) {
			log.Printf("WARNING: skipping exchange rate entry %q with invalid rate", entry)
			continue
		}

		rates[strings.TrimSpace(pair)] = rate
	}

	return rates
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
