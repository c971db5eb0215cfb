package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL   string
	RunMigrations bool // Apply embedded migrations at startup (the hosted schema usually exists)
	SeedDevData   bool // Seed the question bank from the YAML config file

	// Redis cache for the shared question catalogue. Empty disables caching.
	RedisURL              string
	CatalogueCacheTTL     time.Duration
	CatalogueWarmInterval time.Duration // 0 disables the background warmer

	// Calendar
	Timezone string // IANA zone defining "today" and day boundaries, e.g. "Asia/Kolkata"

	// Identity, set by the authenticating proxy in front of the service
	UserIDHeader string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitPerMinute int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                   getEnv("ENV", "development"),
		ServerAddr:            getEnv("SERVER_ADDR", ":3000"),
		BaseURL:               getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:           getEnv("DATABASE_URL", "postgres://localhost:5432/dsastreak?sslmode=disable"),
		RunMigrations:         getEnvBool("RUN_MIGRATIONS", true),
		SeedDevData:           getEnvBool("SEED_DEV_DATA", false),
		RedisURL:              getEnv("REDIS_URL", ""),
		CatalogueCacheTTL:     getEnvDuration("CATALOGUE_CACHE_TTL", 10*time.Minute),
		CatalogueWarmInterval: getEnvDuration("CATALOGUE_WARM_INTERVAL", 5*time.Minute),
		Timezone:              getEnv("TIMEZONE", "UTC"),
		UserIDHeader:          getEnv("USER_ID_HEADER", "X-User-ID"),
		TLSEnabled:            getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:           getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:            getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:           getEnv("CORS_ORIGINS", ""),
		RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Location resolves Timezone. The zone name is also sent to Postgres as the
// session time zone, so "Local" is rejected: Postgres does not know it.
func (c *Config) Location() (*time.Location, error) {
	if strings.EqualFold(c.Timezone, "Local") {
		return nil, fmt.Errorf("invalid TIMEZONE %q: use an IANA zone name such as \"Europe/Berlin\"", c.Timezone)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CacheEnabled returns true if a Redis catalogue cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
