// Package config loads environment-driven configuration for the two
// binaries.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server configures the administration web app.
type Server struct {
	Addr        string `env:"TRAINER_ADDR" envDefault:":8080"`
	APIBaseURL  string `env:"TRAINER_API_URL" envDefault:"http://localhost:8081"`
	TemplateDir string `env:"TRAINER_TEMPLATE_DIR" envDefault:"internal/adapters/http/templates"`
	CSRFKey     string `env:"TRAINER_CSRF_KEY"` // 64 hex chars (32 bytes); random per start when unset
	Environment string `env:"TRAINER_ENV" envDefault:"development"`
}

// API configures the REST backend.
type API struct {
	Addr   string `env:"TRAINER_API_ADDR" envDefault:":8081"`
	DBPath string `env:"TRAINER_DB_PATH" envDefault:"personaltrainer.db"`
	Seed   bool   `env:"TRAINER_SEED" envDefault:"true"`
}

// ParseServer loads the web app configuration from the environment.
func ParseServer() (Server, error) {
	var c Server
	if err := env.Parse(&c); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// ParseAPI loads the backend configuration from the environment.
func ParseAPI() (API, error) {
	var c API
	if err := env.Parse(&c); err != nil {
		return API{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
