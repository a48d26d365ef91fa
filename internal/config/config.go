package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store backends.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"UangKu"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Store struct {
		// Backend selects where the collections are persisted: "file"
		// (JSON files under Dir) or "postgres".
		Backend string `envconfig:"STORE_BACKEND" default:"file"`
		Dir     string `envconfig:"STORE_DIR" default:"data"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"uangku"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret enables JWT bearer authentication on the API when set.
		Secret string `envconfig:"AUTH_SECRET"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
