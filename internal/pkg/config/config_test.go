//go:build unit

package config_test

import (
	"testing"
	"time"

	"apprien-go-sdk/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults applied when only required values are set", func(t *testing.T) {
		t.Setenv("PRICING_PACKAGE_NAME", "com.example.game")
		t.Setenv("PRICING_TOKEN", "secret-token")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "https://game.apprien.com", cfg.Pricing.BaseURL)
		assert.Equal(t, "google", cfg.Pricing.Integration)
		assert.Equal(t, 3*time.Second, cfg.Pricing.RequestTimeout)
		assert.Equal(t, 16*time.Millisecond, cfg.Pricing.PollInterval)
		assert.Equal(t, 4, cfg.Pricing.ResolveConcurrency)
		assert.Equal(t, "catalog.yaml", cfg.Catalog.File)
	})

	t.Run("missing token fails", func(t *testing.T) {
		t.Setenv("PRICING_PACKAGE_NAME", "com.example.game")
		t.Setenv("PRICING_TOKEN", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown integration rejected", func(t *testing.T) {
		t.Setenv("PRICING_PACKAGE_NAME", "com.example.game")
		t.Setenv("PRICING_TOKEN", "secret-token")
		t.Setenv("PRICING_INTEGRATION", "steam")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("zero error report burst rejected", func(t *testing.T) {
		t.Setenv("PRICING_PACKAGE_NAME", "com.example.game")
		t.Setenv("PRICING_TOKEN", "secret-token")
		t.Setenv("PRICING_ERROR_REPORT_BURST", "0")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("timeout parsed as duration", func(t *testing.T) {
		t.Setenv("PRICING_PACKAGE_NAME", "com.example.game")
		t.Setenv("PRICING_TOKEN", "secret-token")
		t.Setenv("PRICING_REQUEST_TIMEOUT", "100ms")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 100*time.Millisecond, cfg.Pricing.RequestTimeout)
	})
}

func TestLoadStubConfig(t *testing.T) {
	t.Run("short secret rejected", func(t *testing.T) {
		t.Setenv("STUB_JWT_SECRET", "short")
		_, err := config.LoadStubConfig()
		assert.Error(t, err)
	})

	t.Run("valid secret", func(t *testing.T) {
		t.Setenv("STUB_JWT_SECRET", "0123456789abcdef0123")
		cfg, err := config.LoadStubConfig()
		require.NoError(t, err)
		assert.Equal(t, "8089", cfg.Port)
		assert.Equal(t, 24*time.Hour, cfg.JWTDuration)
	})
}
