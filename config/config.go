package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	Currency string `envconfig:"CURRENCY" default:"AED"`

	// SessionFile is where the login blob lives, the stand-in for the
	// browser's local storage.
	SessionFile string `envconfig:"SESSION_FILE" default:"solonest-session.json"`

	// SeedDemoData loads the demo leads/appointments/contracts on boot.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`

	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:3000"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
