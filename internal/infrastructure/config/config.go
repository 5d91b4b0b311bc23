package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	Store   StoreConfig
	Auth    AuthConfig
	Pricing PricingConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// StoreConfig holds local record store settings
type StoreConfig struct {
	Path       string // sqlite file path for the device-local record store
	SessionKey string // record key the session is persisted under
}

// AuthConfig holds session store settings
type AuthConfig struct {
	Latency time.Duration // simulated round-trip delay for login/register
}

// PricingConfig holds order pricing constants
type PricingConfig struct {
	FreeShippingThreshold float64
	FlatShippingRate      float64
	TaxRate               float64
}

// Load loads configuration from the TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with SHOPVERSE_ prefix (e.g. SHOPVERSE_STORE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SHOPVERSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Store: StoreConfig{
			Path:       v.GetString("store.path"),
			SessionKey: v.GetString("store.session_key"),
		},
		Auth: AuthConfig{
			Latency: v.GetDuration("auth.latency"),
		},
		Pricing: PricingConfig{
			FreeShippingThreshold: v.GetFloat64("pricing.free_shipping_threshold"),
			FlatShippingRate:      v.GetFloat64("pricing.flat_shipping_rate"),
			TaxRate:               v.GetFloat64("pricing.tax_rate"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers the built-in defaults with viper. Values set
// explicitly in config.toml or the environment always win, including
// explicit zeros such as a free store (tax_rate = 0).
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "shopverse")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("store.path", "shopverse.db")
	v.SetDefault("store.session_key", "shopverse_user")
	v.SetDefault("auth.latency", 500*time.Millisecond)
	v.SetDefault("pricing.free_shipping_threshold", 50.00)
	v.SetDefault("pricing.flat_shipping_rate", 9.99)
	v.SetDefault("pricing.tax_rate", 0.08)
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Auth.Latency < 0 {
		return fmt.Errorf("auth.latency cannot be negative")
	}
	if c.Pricing.FreeShippingThreshold < 0 {
		return fmt.Errorf("pricing.free_shipping_threshold cannot be negative")
	}
	if c.Pricing.FlatShippingRate < 0 {
		return fmt.Errorf("pricing.flat_shipping_rate cannot be negative")
	}
	if c.Pricing.TaxRate < 0 || c.Pricing.TaxRate >= 1 {
		return fmt.Errorf("pricing.tax_rate must be in [0, 1), got %f", c.Pricing.TaxRate)
	}
	return nil
}
