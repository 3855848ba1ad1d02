// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles importer settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. Credentials may live
in a local .env file, which is loaded into the environment first.

Usage:

	cfg, err := config.Load(".env")
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only (flags are applied once in cmd).
  - DI-Friendly: Passed to core components (pool, importer) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/scrolls/internal/platform/validate"
)

// # Configuration Schema

// Config holds all runtime configuration for an import run.
type Config struct {
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	// RunMigrations applies pending migrations before the import starts.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`

	// SchemaVariant selects the column-index table and derived-field rules.
	SchemaVariant string `env:"SCHEMA_VARIANT" envDefault:"catalogue"`
	// SchemaFile optionally adds variants from a YAML file.
	SchemaFile string `env:"SCHEMA_FILE"`

	// InputPath is a CSV file, or a directory searched recursively for *.csv.
	InputPath string `env:"INPUT_PATH" envDefault:"."`
	// Reset destructively clears managed content before the fetch phase.
	Reset bool `env:"RESET" envDefault:"false"`
	// Mode is one of full, posts or meta.
	Mode string `env:"IMPORT_MODE" envDefault:"full"`

	// MaxWritesPerSecond throttles inserts; zero disables throttling.
	MaxWritesPerSecond float64 `env:"MAX_WRITES_PER_SECOND" envDefault:"0"`

	// Key-Value store (Redis) for the single-writer run lock. Optional.
	RedisURL string `env:"REDIS_URL"`

	// StatusAddr exposes run progress over HTTP when set (e.g. ":9090").
	StatusAddr string `env:"STATUS_ADDR"`
}

// # Configuration Loading

// Load reads the given .env files (missing files are skipped) and parses
// environment variables into a [Config] struct.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFiles loads existing files only. Variables already set in the
// process environment win over file values.
func loadEnvFiles(envFiles []string) error {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: stat %s: %w", file, err)
		}
		existing = append(existing, file)
	}

	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: failed to load env files: %w", err)
	}
	return nil
}

// Validate checks the values env parsing cannot. Command-line flags applied
// later are validated again by the command.
func (c *Config) Validate() error {
	return validate.New("config").
		Required("SCHEMA_VARIANT", c.SchemaVariant).
		OneOf("IMPORT_MODE", c.Mode, "full", "posts", "meta").
		Custom("MAX_WRITES_PER_SECOND", c.MaxWritesPerSecond < 0, "Must not be negative").
		Err()
}

// IsDevelopment reports whether the importer is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LockEnabled reports whether a Redis run lock is configured.
func (c *Config) LockEnabled() bool {
	return c.RedisURL != ""
}

// StatusEnabled reports whether the progress server should be started.
func (c *Config) StatusEnabled() bool {
	return c.StatusAddr != ""
}
