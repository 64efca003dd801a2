// Package config loads courseware configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// FromEnv populates cfg from environment variables using `env` struct tags.
// Defaults declared with `envDefault` apply when a variable is unset.
func FromEnv(cfg any) error {
	if cfg == nil {
		return fmt.Errorf("config target is required")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
