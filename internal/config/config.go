package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store"`
	Log        LogConfig        `yaml:"log"`
	View       ViewConfig       `yaml:"view"`
	Validation ValidationConfig `yaml:"validation"`
	Seed       bool             `yaml:"seed"`
}

type StoreConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string `yaml:"driver"`
	// DSN is the sqlite data source; ignored by the memory driver.
	DSN string `yaml:"dsn"`
	// Cascade is "shallow" or "recursive".
	Cascade string `yaml:"cascade"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type ViewConfig struct {
	Locale string `yaml:"locale"`
}

type ValidationConfig struct {
	StrictTypes bool `yaml:"strict_types"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Driver:  "memory",
			DSN:     ":memory:",
			Cascade: "shallow",
		},
		Log: LogConfig{
			Level: "info",
		},
		View: ViewConfig{
			Locale: "en",
		},
		Seed: true,
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("STOWAGE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if driver := os.Getenv("STOWAGE_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if dsn := os.Getenv("STOWAGE_STORE_DSN"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if cascade := os.Getenv("STOWAGE_STORE_CASCADE"); cascade != "" {
		cfg.Store.Cascade = cascade
	}
	if level := os.Getenv("STOWAGE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("STOWAGE_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}
	if locale := os.Getenv("STOWAGE_VIEW_LOCALE"); locale != "" {
		cfg.View.Locale = locale
	}
	if seedStr := os.Getenv("STOWAGE_SEED"); seedStr != "" {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STOWAGE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if strictStr := os.Getenv("STOWAGE_STRICT_TYPES"); strictStr != "" {
		strict, err := strconv.ParseBool(strictStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STOWAGE_STRICT_TYPES: %w", err)
		}
		cfg.Validation.StrictTypes = strict
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid store driver %q (want memory or sqlite)", c.Store.Driver)
	}
	switch c.Store.Cascade {
	case "shallow", "recursive":
	default:
		return fmt.Errorf("invalid store cascade %q (want shallow or recursive)", c.Store.Cascade)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if _, err := c.Locale(); err != nil {
		return err
	}
	return nil
}

// Locale parses the configured view locale.
func (c Config) Locale() (language.Tag, error) {
	tag, err := language.Parse(c.View.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid view locale %q: %w", c.View.Locale, err)
	}
	return tag, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
