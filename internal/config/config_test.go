package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://dummyjson.com/products", cfg.Catalog.URL)
	assert.Equal(t, 50, cfg.Catalog.Limit)
	assert.Equal(t, 12, cfg.Checkout.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Checkout.ConfirmationTTL)
	assert.True(t, cfg.Checkout.SeedOrders)
	assert.False(t, cfg.Redis.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("VIEW_PAGE_SIZE", "24")
	t.Setenv("CHECKOUT_CONFIRMATION_TTL", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CATALOG_LIMIT", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 24, cfg.Checkout.PageSize)
	assert.Equal(t, 2*time.Second, cfg.Checkout.ConfirmationTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
	assert.Equal(t, 50, cfg.Catalog.Limit, "unparsable values fall back to the default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"short secret", func(c *Config) { c.Session.Secret = "short" }, "SESSION_SECRET"},
		{"bad catalog url", func(c *Config) { c.Catalog.URL = "ftp://example.com" }, "CATALOG_URL"},
		{"relative catalog url", func(c *Config) { c.Catalog.URL = "/products" }, "CATALOG_URL"},
		{"zero page size", func(c *Config) { c.Checkout.PageSize = 0 }, "VIEW_PAGE_SIZE"},
		{"zero ttl", func(c *Config) { c.Checkout.ConfirmationTTL = 0 }, "CHECKOUT_CONFIRMATION_TTL"},
		{"zero session ttl", func(c *Config) { c.Session.TTL = 0 }, "SESSION_TTL"},
		{"negative session ttl", func(c *Config) { c.Session.TTL = -time.Minute }, "SESSION_TTL"},
		{"zero catalog timeout", func(c *Config) { c.Catalog.Timeout = 0 }, "CATALOG_TIMEOUT"},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "APP_PORT"},
		{"redis without host", func(c *Config) { c.Redis.Enabled = true; c.Redis.Host = "" }, "REDIS_HOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
