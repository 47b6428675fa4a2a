package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"spese-gateway"`
		Port int    `envconfig:"PORT" default:"3000"`
	}

	DB struct {
		// Missing DATABASE_URL is fatal at startup, never a per-request error.
		URL string `envconfig:"DATABASE_URL" required:"true"`
	}

	Catalog struct {
		BaseURL string        `envconfig:"CATALOG_API_URL" default:"https://api.catalog.example.com/v2/products"`
		Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
