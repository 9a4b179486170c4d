// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	// Client settings
	APIURL       string `mapstructure:"API_URL"`
	HTTPTimeout  string `mapstructure:"HTTP_TIMEOUT"`
	SessionStore string `mapstructure:"SESSION_STORE"`
	SessionFile  string `mapstructure:"SESSION_FILE"`
	RedisURL     string `mapstructure:"REDIS_URL"`

	// Dev server settings
	Port      string `mapstructure:"PORT"`
	JWTSecret string `mapstructure:"JWT_SECRET"`
	DBPath    string `mapstructure:"DB_PATH"`
	Env       string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults are
	// enough to run against a local dev server.
	_ = viper.ReadInConfig()

	viper.SetDefault("API_URL", "http://localhost:3003")
	// No transport default is trusted: every remote call carries this
	// explicit timeout. See DESIGN.md.
	viper.SetDefault("HTTP_TIMEOUT", "10s")
	viper.SetDefault("SESSION_STORE", "file")
	viper.SetDefault("SESSION_FILE", "")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("PORT", "3003")
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("DB_PATH", "bloglist.db")
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and well formed.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("API_URL is required")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if _, err := time.ParseDuration(c.HTTPTimeout); err != nil {
		return fmt.Errorf("HTTP_TIMEOUT must be a valid duration: %w", err)
	}
	switch c.SessionStore {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("SESSION_STORE must be one of file, redis, memory (got %q)", c.SessionStore)
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.JWTSecret == "your-secret-key-change-in-production" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
	}

	return nil
}

// Timeout returns the parsed HTTP timeout. Validate guarantees the value parses.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
