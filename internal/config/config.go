// Package config loads process settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"PORT"`
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	CatalogFile     string        `mapstructure:"CATALOG_FILE"`
	TemplateFile    string        `mapstructure:"TEMPLATE_FILE"`
	ThemeFile       string        `mapstructure:"THEME_FILE"`
	ThemeVariant    string        `mapstructure:"THEME_VARIANT"`
	StripMarkup     bool          `mapstructure:"STRIP_MARKUP"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"PORT",
	"ENV",
	"LOG_LEVEL",
	"CATALOG_FILE",
	"TEMPLATE_FILE",
	"THEME_FILE",
	"THEME_VARIANT",
	"STRIP_MARKUP",
	"SHUTDOWN_TIMEOUT",
}

// Load reads settings with defaults applied. A missing .env file is not an
// error.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("TEMPLATE_FILE", "")
	v.SetDefault("THEME_FILE", "")
	v.SetDefault("THEME_VARIANT", "")
	v.SetDefault("STRIP_MARKUP", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		return fmt.Errorf("config: PORT is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// IsDev reports whether the process runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
