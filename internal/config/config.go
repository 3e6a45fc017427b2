// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Serve holds the HTTP API configuration.
type Serve struct {
	Host          string `env:"STRUCTCALC_HOST" envDefault:"0.0.0.0"`
	Port          int    `env:"STRUCTCALC_PORT" envDefault:"5000"`
	MaterialsFile string `env:"STRUCTCALC_MATERIALS_FILE"`
}

// LoadServe parses the serve configuration from environment variables.
func LoadServe() (Serve, error) {
	var cfg Serve
	if err := env.Parse(&cfg); err != nil {
		return Serve{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Serve{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (s Serve) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
