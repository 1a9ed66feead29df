package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/buffcalc/internal/model"
)

// Calculator holds all configuration for buffcalc.
type Calculator struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Value parsing: lenient (NaN propagates) or strict (bad values are errors)
	ParseMode string `yaml:"parse_mode"`

	// Batch evaluation concurrency
	Workers int `yaml:"workers"`

	// Hide weak buff types in selector listings
	IgnoreWeakBuff bool `yaml:"ignore_weak_buff"`

	// Fixed base rows added to every calculation
	DefaultBuffs []model.DefaultBuff `yaml:"default_buffs"`

	// Build store
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Calculator config with sensible defaults.
func Default() Calculator {
	return Calculator{
		LogLevel:     "info",
		ParseMode:    "lenient",
		Workers:      4,
		DefaultBuffs: model.DefaultBaseBuffs(),
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "buffcalc",
			Password: "buffcalc",
			DBName:   "buffcalc",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Calculator, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := model.ValidateDefaults(cfg.DefaultBuffs); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
