// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/skyfare/flight-fare-service/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upstream UpstreamConfig
	Auth     AuthConfig
	Pricing  PricingConfig
	Search   SearchConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8001"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// DatabaseConfig holds airport store connection settings.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER,notEmpty"`
	Password string `env:"DB_PASSWORD,notEmpty"`
	Name     string `env:"DB_NAME,notEmpty"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN returns a postgres connection string for pgx.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// UpstreamConfig holds settings for the third-party flights API.
type UpstreamConfig struct {
	BaseURL  string        `env:"FLIGHTS_API_BASE_URL,notEmpty"`
	APIKey   string        `env:"FLIGHTS_API_KEY,notEmpty"`
	Username string        `env:"FLIGHTS_API_USERNAME,notEmpty"`
	Password string        `env:"FLIGHTS_API_PASSWORD,notEmpty"`
	Timeout  time.Duration `env:"FLIGHTS_API_TIMEOUT" envDefault:"10s"`
}

// AuthConfig holds the shared-secret credentials the access gate checks
// on every request.
type AuthConfig struct {
	Username string `env:"APP_USERNAME,notEmpty"`
	Password string `env:"APP_PASSWORD,notEmpty"`
}

// PricingConfig holds the fee model settings.
type PricingConfig struct {
	// MinFeeTax is the fee floor: the applied fee is never below this
	// amount, and scales at 10% of fare above it.
	MinFeeTax float64 `env:"MIN_FEE_TAX" envDefault:"5"`
}

// SearchConfig holds limits for the itinerary search pipeline.
type SearchConfig struct {
	// MaxCombinations caps the round-trip cross product to guard against
	// oversized upstream result sets.
	MaxCombinations int `env:"SEARCH_MAX_COMBINATIONS" envDefault:"10000"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone defines "today" for the outbound-date check.
	Timezone string `env:"APP_TIMEZONE" envDefault:"UTC"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("FLIGHTS_API_TIMEOUT must be positive")
	}

	if cfg.Pricing.MinFeeTax < 0 {
		return fmt.Errorf("MIN_FEE_TAX must not be negative, got %v", cfg.Pricing.MinFeeTax)
	}

	if cfg.Search.MaxCombinations < 1 {
		return fmt.Errorf("SEARCH_MAX_COMBINATIONS must be at least 1, got %d", cfg.Search.MaxCombinations)
	}

	if _, err := timeutil.GetLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE must be a valid IANA timezone name: %w", err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
