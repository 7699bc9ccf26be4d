package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Simulation
	GameSeed            int64 `envconfig:"GAME_SEED" default:"0"` // 0 draws a random seed
	MaxPlays            int   `envconfig:"MAX_PLAYS" default:"1000"`
	MaxReturnIterations int   `envconfig:"MAX_RETURN_ITERATIONS" default:"50"`

	// Rosters
	RosterFile string `envconfig:"ROSTER_FILE" default:""` // empty uses the built-in teams
	HomeTeam   string `envconfig:"HOME_TEAM" default:"HOM"`
	AwayTeam   string `envconfig:"AWAY_TEAM" default:"AWY"`

	// Output
	PrintLog bool `envconfig:"PRINT_LOG" default:"true"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"false"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if in development mode
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MaxPlays <= 0 {
		return fmt.Errorf("MAX_PLAYS must be positive")
	}

	if c.MaxReturnIterations <= 0 {
		return fmt.Errorf("MAX_RETURN_ITERATIONS must be positive")
	}

	if strings.TrimSpace(c.HomeTeam) == "" || strings.TrimSpace(c.AwayTeam) == "" {
		return fmt.Errorf("HOME_TEAM and AWAY_TEAM are required")
	}

	if strings.EqualFold(strings.TrimSpace(c.HomeTeam), strings.TrimSpace(c.AwayTeam)) {
		return fmt.Errorf("HOME_TEAM and AWAY_TEAM must differ")
	}

	if c.EnableMetrics && (c.MetricsPort <= 0 || c.MetricsPort > 65535) {
		return fmt.Errorf("METRICS_PORT must be a valid port")
	}

	return nil
}

// MetricsAddr returns the listen address of the metrics server
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MustLoad loads configuration or panics on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
