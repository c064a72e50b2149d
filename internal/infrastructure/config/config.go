// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/chargen/internal/domain/entities"
)

const (
	// DefaultConfigFile is the config file looked up when no path is given.
	DefaultConfigFile = "chargen.yaml"
	// DefaultEnvFile is the dotenv file loaded before environment overrides.
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CHARGEN_"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Server     ServerConfig     `yaml:"server" envPrefix:"SERVER_"`
	Database   DatabaseConfig   `yaml:"database" envPrefix:"DATABASE_"`
	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
	Generation GenerationConfig `yaml:"generation" envPrefix:"GENERATION_"`
}

// ServerConfig holds configuration for the HTTP transport.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	CORSOrigins     []string      `yaml:"cors_origins" env:"CORS_ORIGINS"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds configuration for the relational store.
type DatabaseConfig struct {
	// Driver is either "sqlite" or "postgres".
	Driver string `yaml:"driver" env:"DRIVER"`
	// DSN is a file path or URI for sqlite, a connection string for postgres.
	DSN string `yaml:"dsn" env:"DSN"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // json or console
}

// GenerationConfig holds the allowed genders and the default quantities
// used when a request omits them.
type GenerationConfig struct {
	Genders          []string `yaml:"genders" env:"GENDERS"`
	PositiveFeatures int      `yaml:"positive_features" env:"POSITIVE_FEATURES"`
	NegativeFeatures int      `yaml:"negative_features" env:"NEGATIVE_FEATURES"`
	Items            int      `yaml:"items" env:"ITEMS"`
}

// Default returns a Config with default values.
func Default() *Config {
	genders := make([]string, len(entities.DefaultGenders))
	for i, g := range entities.DefaultGenders {
		genders[i] = string(g)
	}

	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			CORSOrigins:     []string{"*"},
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "chargen.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Generation: GenerationConfig{
			Genders:          genders,
			PositiveFeatures: 5,
			NegativeFeatures: 3,
			Items:            3,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and
// the environment, in increasing precedence. An empty path means
// DefaultConfigFile, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if explicit {
			return nil, fmt.Errorf("config file not found: %s (run 'chargen init' first)", path)
		}
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := loadDotEnv(DefaultEnvFile); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv exports the variables of a dotenv file without overriding
// variables already set. A missing file is ignored.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the services cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}

	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database.driver %q (valid: %s, %s)", c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log.format %q (valid: json, console)", c.Log.Format)
	}

	if _, err := c.Generation.GenderSet(); err != nil {
		return fmt.Errorf("invalid generation.genders: %w", err)
	}
	if c.Generation.PositiveFeatures < 0 || c.Generation.NegativeFeatures < 0 || c.Generation.Items < 0 {
		return fmt.Errorf("generation defaults: %w", entities.ErrNegativeCount)
	}

	return nil
}

// GenderSet returns the configured genders as a domain set.
func (g GenerationConfig) GenderSet() (entities.GenderSet, error) {
	return entities.NewGenderSet(g.Genders...)
}
