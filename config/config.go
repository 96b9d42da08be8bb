package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort              = "8081"
	defaultRateLimitRequests = 100
	defaultRateLimitWindow   = time.Minute
)

var defaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// Config is the process configuration, read once in main.
type Config struct {
	Port              string
	AppEnv            string
	DataPath          string // empty = embedded dataset
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RedisURL          string // empty = in-memory rate limiting
	LogLevel          string
}

// LoadDotEnv loads .env when present. A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:              getEnv("PORT", defaultPort),
		AppEnv:            getEnv("APP_ENV", "development"),
		DataPath:          os.Getenv("DATA_PATH"),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", defaultAllowedOrigins),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", defaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", defaultRateLimitWindow),
		RedisURL:          os.Getenv("REDIS_URL"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
