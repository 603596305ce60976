package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:4567,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server read and write timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		Driver          string `yaml:"driver" json:"driver" jsonschema:"default=sqlite,enum=sqlite,enum=pgx,enum=postgres,description=Database driver"`
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
		ConnectRetries  int    `yaml:"connect_retries" json:"connect_retries" jsonschema:"default=5,description=Attempts to reach the database on startup"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Feeds FeedsConfig `yaml:"feeds" json:"feeds" jsonschema:"description=Feed configuration"`

	Import ImportConfig `yaml:"import" json:"import" jsonschema:"description=RSS/Atom article import configuration"`
}

// FeedsConfig holds feed settings
type FeedsConfig struct {
	Defaults []string `yaml:"defaults" json:"defaults" jsonschema:"description=Feeds created on startup if missing"`
}

// ImportConfig holds article import settings
type ImportConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Timeout for fetching a remote feed"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=feedreader/1.0,description=User agent for HTTP requests"`
	MaxItems  int           `yaml:"max_items" json:"max_items" jsonschema:"default=100,minimum=1,description=Maximum entries imported from one document"`
	MaxBytes  int64         `yaml:"max_bytes" json:"max_bytes" jsonschema:"default=1048576,minimum=1,description=Maximum size of a fetched feed document in bytes"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finalize(&cfg)
}

// Default returns configuration with all defaults applied
func Default() *Config {
	cfg, _ := finalize(&Config{}) // defaults always pass validation
	return cfg
}

// finalize fills defaults and validates
func finalize(cfg *Config) (*Config, error) {
	setDefaults(cfg)

	// validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":4567"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database, empty DSN is resolved by the repository
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}
	if cfg.Database.ConnectRetries == 0 {
		cfg.Database.ConnectRetries = 5
	}

	// set defaults for import
	if cfg.Import.Timeout == 0 {
		cfg.Import.Timeout = 30 * time.Second
	}
	if cfg.Import.UserAgent == "" {
		cfg.Import.UserAgent = "feedreader/1.0"
	}
	if cfg.Import.MaxItems == 0 {
		cfg.Import.MaxItems = 100
	}
	if cfg.Import.MaxBytes == 0 {
		cfg.Import.MaxBytes = 1024 * 1024 // 1MB
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case "sqlite", "pgx", "postgres":
	default:
		return fmt.Errorf("database.driver %q is not supported, use sqlite, pgx or postgres", cfg.Database.Driver)
	}
	if cfg.Database.Driver != "sqlite" && cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for %s", cfg.Database.Driver)
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must be non-negative")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Import.Timeout < time.Second {
		return fmt.Errorf("import timeout must be at least 1 second")
	}
	if cfg.Import.MaxItems < 1 {
		return fmt.Errorf("import.max_items must be at least 1")
	}
	if cfg.Import.MaxBytes < 1 {
		return fmt.Errorf("import.max_bytes must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetImportConfig returns article import configuration
func (c *Config) GetImportConfig() ImportConfig {
	return c.Import
}
