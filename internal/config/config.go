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
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// NEO catalog Config
	NeoAPIURL        string        `env:"NEO_API_URL" envDefault:"https://api.nasa.gov/neo/rest/v1"`
	NeoAPIKey        string        `env:"NEO_API_KEY" envDefault:"DEMO_KEY"`
	NeoAPITimeout    time.Duration `env:"NEO_API_TIMEOUT" envDefault:"10s"`
	NeoAPIMaxRetries int           `env:"NEO_API_MAX_RETRIES" envDefault:"3"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Risk Config
	AlertTorinoThreshold int     `env:"ALERT_TORINO_THRESHOLD" envDefault:"5"`
	PopulationDensity    float64 `env:"POPULATION_DENSITY" envDefault:"300"`
	YearsToApproach      float64 `env:"YEARS_TO_APPROACH" envDefault:"50"`
	SummaryConcurrency   int     `env:"SUMMARY_CONCURRENCY" envDefault:"8"`
	SummaryLimit         int     `env:"SUMMARY_LIMIT" envDefault:"50"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		DBMaxConns:           getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		CacheTTL:             getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		NeoAPIURL:            getEnv("NEO_API_URL", "https://api.nasa.gov/neo/rest/v1"),
		NeoAPIKey:            getEnv("NEO_API_KEY", "DEMO_KEY"),
		NeoAPITimeout:        getEnvAsDuration("NEO_API_TIMEOUT", 10*time.Second),
		NeoAPIMaxRetries:     getEnvAsInt("NEO_API_MAX_RETRIES", 3),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AlertTorinoThreshold: getEnvAsInt("ALERT_TORINO_THRESHOLD", 5),
		PopulationDensity:    getEnvAsFloat("POPULATION_DENSITY", 300),
		YearsToApproach:      getEnvAsFloat("YEARS_TO_APPROACH", 50),
		SummaryConcurrency:   getEnvAsInt("SUMMARY_CONCURRENCY", 8),
		SummaryLimit:         getEnvAsInt("SUMMARY_LIMIT", 50),
		ShutdownTimeout:      getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет значения, при которых сервис не может работать корректно
func (c *Config) validate() error {
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns)
	}
	if c.PopulationDensity < 0 {
		return fmt.Errorf("POPULATION_DENSITY must be non-negative, got %g", c.PopulationDensity)
	}
	if c.YearsToApproach <= 0 {
		return fmt.Errorf("YEARS_TO_APPROACH must be positive, got %g", c.YearsToApproach)
	}
	if c.SummaryConcurrency < 1 {
		return fmt.Errorf("SUMMARY_CONCURRENCY must be at least 1, got %d", c.SummaryConcurrency)
	}
	if c.SummaryLimit < 1 {
		return fmt.Errorf("SUMMARY_LIMIT must be at least 1, got %d", c.SummaryLimit)
	}
	if c.AlertTorinoThreshold < 0 || c.AlertTorinoThreshold > 10 {
		return fmt.Errorf("ALERT_TORINO_THRESHOLD must be within 0..10, got %d", c.AlertTorinoThreshold)
	}
	return nil
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
