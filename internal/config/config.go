// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
	"replace_with_a_random_secret",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"EVREG_DB_PATH" envDefault:"./data/evreg.db"`
	SessionSecret string `env:"EVREG_SESSION_SECRET,required"`
	AdminPassword string `env:"EVREG_ADMIN_PASSWORD,required"`
	ServerHost    string `env:"EVREG_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"EVREG_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"EVREG_ENV" envDefault:"development"`
	LogLevel      string `env:"EVREG_LOG_LEVEL" envDefault:"info"`

	// Seeding configuration
	DoSeed bool `env:"EVREG_DO_SEED" envDefault:"false"` // Enable demo event seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// MinAdminPasswordLength is the minimum required length for the admin password.
const MinAdminPasswordLength = 8

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("EVREG_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("EVREG_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if len(cfg.AdminPassword) < MinAdminPasswordLength {
		return nil, fmt.Errorf("EVREG_ADMIN_PASSWORD must be at least %d characters long, got %d",
			MinAdminPasswordLength, len(cfg.AdminPassword))
	}

	if strings.EqualFold(cfg.AdminPassword, "admin123") {
		return nil, fmt.Errorf("EVREG_ADMIN_PASSWORD is a known default value and must not be used")
	}

	return cfg, nil
}
