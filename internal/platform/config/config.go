// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

/*
Package config maps OS environment variables onto a typed struct via
'caarlos0/env', so a missing or malformed setting fails the process at
startup instead of surfacing mid-request.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The struct is populated once during boot and treated as read-only from
then on. Components that need a setting receive it through their
constructors; nothing reads the environment after Load returns.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/relatolabs/relato/pkg/query"
)

// Config is the full runtime configuration of the Relato API server.
type Config struct {

	// HTTP listener
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// PostgreSQL
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath points at the directory of versioned SQL migrations.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Redis (refresh-flow token stores)
	RedisURL string `env:"REDIS_URL,required"`

	// RSA key pair for signing and verifying access tokens
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Content listing knobs
	PostsPerPageMax     int  `env:"POSTS_PER_PAGE_MAX"    envDefault:"50"`
	SearchExtended      bool `env:"SEARCH_EXTENDED"       envDefault:"false"`
	MenuIncludeInactive bool `env:"MENU_INCLUDE_INACTIVE" envDefault:"false"`

	// ExtraOrigins is a comma-separated list of additional origins the
	// CORS middleware should accept beyond the built-in rules.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// Load reads the process environment into a [Config]. A field tagged
// 'required' that is absent makes Load return an error rather than a
// partially filled struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
// Development mode relaxes CORS to any origin.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedExtraOrigins returns ExtraOrigins split into individual
// origins, with blanks dropped.
func (c *Config) AllowedExtraOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
