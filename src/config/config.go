package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains every runtime parameter of the server. Values come from
// environment variables; main.go loads a .env file first when one exists.
type Config struct {
	Port     string `env:"PORT" envDefault:"5000"`
	MongoURI string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017/portfolio"`
	MongoDB  string `env:"MONGODB_DB" envDefault:"portfolio"`
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`

	JWTSecret       string `env:"JWT_SECRET" envDefault:"your-secret-key"`
	JWTExpiresHours int    `env:"JWT_EXPIRES_HOURS" envDefault:"24"`

	Seed Seed `envPrefix:"SEED_"`
}

// Seed controls startup seeding of the portfolio owner account.
type Seed struct {
	OnStart       bool   `env:"ON_START" envDefault:"false"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@portfolio.local"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Portfolio Owner"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
