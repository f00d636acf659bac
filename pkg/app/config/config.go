package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from BANGAZON_* environment variables.
type Config struct {
	DBPath   string `envconfig:"DB_PATH" default:"bangazon.db"`
	LogPath  string `envconfig:"LOG_PATH" default:"bangazon.log"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("bangazon", cfg); err != nil {
		return nil, errors.Wrap(err, "process environment config")
	}
	return cfg, nil
}
