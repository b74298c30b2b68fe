package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Resolver Config
	StalenessCutoff  time.Duration `env:"STALENESS_CUTOFF" envDefault:"30m"`
	FetchBatchSize   int           `env:"FETCH_BATCH_SIZE" envDefault:"100"`
	NearbyRadiusKm   float64       `env:"NEARBY_RADIUS_KM" envDefault:"10"`
	NearbyMaxResults int           `env:"NEARBY_MAX_RESULTS" envDefault:"20"`
	PollInterval     time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`

	// Place traveler count Config
	PlaceCountRadiusKm    float64 `env:"PLACE_COUNT_RADIUS_KM" envDefault:"0.1"`
	PlaceCountExcludeSelf bool    `env:"PLACE_COUNT_EXCLUDE_SELF" envDefault:"false"`

	// Tracker Config
	FixTimeout time.Duration `env:"FIX_TIMEOUT" envDefault:"20s"`
	FixMaxAge  time.Duration `env:"FIX_MAX_AGE" envDefault:"10s"`

	// Places provider Config
	PlacesBaseURL      string        `env:"PLACES_BASE_URL"`
	PlacesAPIKey       string        `env:"PLACES_API_KEY"`
	PlacesTimeout      time.Duration `env:"PLACES_TIMEOUT" envDefault:"10s"`
	PlacesCacheTTL     time.Duration `env:"PLACES_CACHE_TTL" envDefault:"5m"`
	PlacesRadiusMeters int           `env:"PLACES_RADIUS_METERS" envDefault:"1500"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		StalenessCutoff:  getEnvAsDuration("STALENESS_CUTOFF", 30*time.Minute),
		FetchBatchSize:   getEnvAsInt("FETCH_BATCH_SIZE", 100),
		NearbyRadiusKm:   getEnvAsFloat("NEARBY_RADIUS_KM", 10),
		NearbyMaxResults: getEnvAsInt("NEARBY_MAX_RESULTS", 20),
		PollInterval:     getEnvAsDuration("POLL_INTERVAL", 30*time.Second),

		PlaceCountRadiusKm:    getEnvAsFloat("PLACE_COUNT_RADIUS_KM", 0.1),
		PlaceCountExcludeSelf: getEnvAsBool("PLACE_COUNT_EXCLUDE_SELF", false),

		FixTimeout: getEnvAsDuration("FIX_TIMEOUT", 20*time.Second),
		FixMaxAge:  getEnvAsDuration("FIX_MAX_AGE", 10*time.Second),

		PlacesBaseURL:      os.Getenv("PLACES_BASE_URL"),
		PlacesAPIKey:       os.Getenv("PLACES_API_KEY"),
		PlacesTimeout:      getEnvAsDuration("PLACES_TIMEOUT", 10*time.Second),
		PlacesCacheTTL:     getEnvAsDuration("PLACES_CACHE_TTL", 5*time.Minute),
		PlacesRadiusMeters: getEnvAsInt("PLACES_RADIUS_METERS", 1500),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
