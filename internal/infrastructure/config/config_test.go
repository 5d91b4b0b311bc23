package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shopverse", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "shopverse.db", cfg.Store.Path)
	assert.Equal(t, "shopverse_user", cfg.Store.SessionKey)
	assert.Equal(t, 500*time.Millisecond, cfg.Auth.Latency)
	assert.Equal(t, 50.00, cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, 9.99, cfg.Pricing.FlatShippingRate)
	assert.Equal(t, 0.08, cfg.Pricing.TaxRate)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHOPVERSE_STORE_PATH", "/tmp/override.db")
	t.Setenv("SHOPVERSE_AUTH_LATENCY", "50ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
	assert.Equal(t, 50*time.Millisecond, cfg.Auth.Latency)
}

func TestLoadExplicitZeros(t *testing.T) {
	chdir(t, t.TempDir())

	toml := `
[pricing]
free_shipping_threshold = 0.0
tax_rate = 0.0
`
	require.NoError(t, os.WriteFile("config.toml", []byte(toml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	// Explicit zeros are real settings, not gaps to fill with defaults.
	assert.Equal(t, 0.0, cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, 0.0, cfg.Pricing.TaxRate)
	assert.Equal(t, 9.99, cfg.Pricing.FlatShippingRate)
}

func TestValidate(t *testing.T) {
	t.Run("rejects negative latency", func(t *testing.T) {
		cfg := &Config{Auth: AuthConfig{Latency: -time.Second}}
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects tax rate of one or more", func(t *testing.T) {
		cfg := &Config{Pricing: PricingConfig{TaxRate: 1.0}}
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects negative shipping rate", func(t *testing.T) {
		cfg := &Config{Pricing: PricingConfig{FlatShippingRate: -1}}
		assert.Error(t, cfg.validate())
	})

	t.Run("accepts zero pricing", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.validate())
	})
}
