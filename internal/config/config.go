package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — path of the on-device SQLite file. The store is opened once
	// at process start and held for the process lifetime; an unopenable store
	// aborts startup (store availability is a precondition, not a per-call check).
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Redis — optional report cache. Empty URL disables caching entirely.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "deposito.db")
	viper.SetDefault("REDIS_URL", "")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
