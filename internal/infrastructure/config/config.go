package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Logger    LoggerConfig
	Cache     CacheConfig
	RateLimit float64
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// RedisConfig is optional; an empty URL disables the product cache.
type RedisConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret         string
	AccessTokenExpiry time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

type CacheConfig struct {
	ProductTTL time.Duration
}

// Load reads an optional .env file and builds the configuration from the
// environment. It fails when a required variable is missing.
func Load() (*Config, error) {
	// A missing .env is fine; variables already set in the environment win.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", ""),
			Database: getEnv("MONGODB_DB_NAME", ""),
			Timeout:  time.Second * time.Duration(getEnvAsInt("MONGODB_TIMEOUT_SECONDS", 10)),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			AccessTokenExpiry: time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Cache: CacheConfig{
			ProductTTL: time.Minute * time.Duration(getEnvAsInt("PRODUCT_CACHE_TTL_MINUTES", 30)),
		},
		RateLimit: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI environment variable not set")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGODB_DB_NAME environment variable not set")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable not set")
	}
	if c.Auth.AccessTokenExpiry <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRY_MINUTES must be positive")
	}
	return nil
}

// GetAccessTokenExpiry returns the lifetime of issued access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.Auth.AccessTokenExpiry
}

// GetProductCacheTTL returns how long product details stay cached.
func (c *Config) GetProductCacheTTL() time.Duration {
	return c.Cache.ProductTTL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}
