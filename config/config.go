package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env string `env:"ENV" envDefault:"development"`

	// Path of the device-local key-value store
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/expense-tracker.db" validate:"required"`

	Firestore Firestore

	Reminder Reminder
}

type Firestore struct {
	ProjectID       string `env:"FIRESTORE_PROJECT_ID"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

type Reminder struct {
	Hour   int `env:"REMINDER_HOUR" envDefault:"20" validate:"gte=0,lte=23"`
	Minute int `env:"REMINDER_MINUTE" envDefault:"0" validate:"gte=0,lte=59"`
}

// Load reads configuration from the environment (and a .env file when one
// exists) and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// RemoteConfigured reports whether a cloud project is set up; without one
// the app runs local-only.
func (c *Config) RemoteConfigured() bool {
	return c.Firestore.ProjectID != ""
}
