package config_test

import (
	"testing"
	"time"

	"github.com/evokeessence/evoke_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://v6.exchangerate-api.com", cfg.ExchangeRateAPIBaseURL)
	assert.Equal(t, 60*time.Minute, cfg.ExchangeRateStaleAfter)
	assert.Equal(t, 5*time.Second, cfg.ExchangeRateFetchTimeout)
	assert.Equal(t, "0.16", cfg.PlatformCommissionRate.String())
	assert.Equal(t, "EUR", cfg.ReportingCurrency)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EXCHANGE_RATE_API_KEY", "k-123")
	t.Setenv("EXCHANGE_RATE_API_BASE_URL", "http://rates.local/")
	t.Setenv("EXCHANGE_RATE_STALE_AFTER", "15m")
	t.Setenv("EXCHANGE_RATE_FETCH_TIMEOUT", "not-a-duration")
	t.Setenv("PLATFORM_COMMISSION_RATE", "0.2")
	t.Setenv("REPORTING_CURRENCY", "gbp")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "k-123", cfg.ExchangeRateAPIKey)
	assert.Equal(t, "http://rates.local", cfg.ExchangeRateAPIBaseURL)
	assert.Equal(t, 15*time.Minute, cfg.ExchangeRateStaleAfter)
	assert.Equal(t, 5*time.Second, cfg.ExchangeRateFetchTimeout)
	assert.Equal(t, "0.2", cfg.PlatformCommissionRate.String())
	assert.Equal(t, "GBP", cfg.ReportingCurrency)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestLoadConfig_InvalidCommissionRate(t *testing.T) {
	for _, raw := range []string{"1", "1.2", "-0.1", "abc"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("PLATFORM_COMMISSION_RATE", raw)
			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_UnsupportedReportingCurrency(t *testing.T) {
	t.Setenv("REPORTING_CURRENCY", "JPY")
	_, err := config.LoadConfig()
	assert.Error(t, err)
}
