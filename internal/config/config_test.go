package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, vars map[string]string) (*Config, error) {
	t.Helper()
	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	return cfg, err
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(t, map[string]string{"STRIPE_SECRET_KEY": "sk_test_123"})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Address())
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "memory", cfg.Catalog.Driver)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 30*time.Second, cfg.Stripe.Timeout)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parse(t, map[string]string{
		"STRIPE_SECRET_KEY":      "sk_test_123",
		"STRIPE_PUBLISHABLE_KEY": "pk_test_123",
		"STRIPE_TIMEOUT":         "5s",
		"CATALOG_DRIVER":         "sqlite",
		"CATALOG_DATABASE_URL":   "catalog.db",
		"HTTP_PORT":              "9000",
		"LOG_FORMAT":             "text",
	})
	require.NoError(t, err)

	assert.Equal(t, "pk_test_123", cfg.Stripe.PublishableKey)
	assert.Equal(t, 5*time.Second, cfg.Stripe.Timeout)
	assert.Equal(t, "sqlite", cfg.Catalog.Driver)
	assert.Equal(t, "catalog.db", cfg.Catalog.DatabaseURL)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTP.Address())
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestParseRequiresStripeSecret(t *testing.T) {
	_, err := parse(t, map[string]string{})
	assert.Error(t, err)

	_, err = parse(t, map[string]string{"STRIPE_SECRET_KEY": ""})
	assert.Error(t, err)
}
