package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It is constructed once at startup and passed into the server; there is
// no ambient global settings object.
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8000"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://samuelrincon.com"`
	LogFile     string `env:"LOG_FILE" envDefault:"./logs/api.log"`

	// Outbound mail (contact form relay)
	EmailHost     string `env:"EMAIL_HOST" envDefault:"smtp.mail.yahoo.com"`
	EmailPort     int    `env:"EMAIL_PORT" envDefault:"465"`
	EmailUsername string `env:"EMAIL_USERNAME" envDefault:"samuelrinconm@yahoo.com"`
	EmailPassword string `env:"EMAIL_PASSWORD"`
	EmailFrom     string `env:"EMAIL_FROM" envDefault:"samuelrinconm@yahoo.com"`
	EmailTo       string `env:"EMAIL_TO" envDefault:"samuelrinconm@yahoo.com"`

	// Content locations
	WebRoot    string `env:"WEB_ROOT" envDefault:"web"`
	ResumeFile string `env:"RESUME_FILE" envDefault:"web/static/resumeV2.pdf"`
}

// Load loads the configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set variables directly
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg, nil
}

// EmailConfigured reports whether the contact form can deliver mail.
// Absence of the password is a valid degraded state: the contact endpoint
// refuses to operate instead of crashing.
func (c *Config) EmailConfigured() bool {
	return c.EmailPassword != ""
}

// AllowedOrigins returns the fixed CORS allow-list
func (c *Config) AllowedOrigins() []string {
	return []string{
		"https://www.samuelrincon.com",
		"https://samuelrincon.com",
		"http://localhost:8000",
	}
}
