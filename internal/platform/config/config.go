package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret          = "a-very-secret-key-should-be-longer-and-random"
	defaultRateAPIBaseURL     = "https://v6.exchangerate-api.com"
	defaultRateStaleAfter     = 60 * time.Minute
	defaultRateFetchTimeout   = 5 * time.Second
	defaultPlatformCommission = "0.16"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	FrontendBaseURL string
	MigrationsPath  string

	// Exchange rate provider
	ExchangeRateAPIKey       string
	ExchangeRateAPIBaseURL   string
	ExchangeRateStaleAfter   time.Duration
	ExchangeRateFetchTimeout time.Duration

	// Commission
	PlatformCommissionRate domain.CommissionRate
	ReportingCurrency      string

	// Infrastructure
	RateLimit         string
	RedisAddr         string
	KafkaBrokers      []string
	KafkaDepositTopic string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// An invalid platform commission rate or reporting currency is an error.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("EXCHANGE_RATE_API_KEY", "")
	v.SetDefault("EXCHANGE_RATE_API_BASE_URL", defaultRateAPIBaseURL)
	v.SetDefault("EXCHANGE_RATE_STALE_AFTER", defaultRateStaleAfter.String())
	v.SetDefault("EXCHANGE_RATE_FETCH_TIMEOUT", defaultRateFetchTimeout.String())
	v.SetDefault("PLATFORM_COMMISSION_RATE", defaultPlatformCommission)
	v.SetDefault("REPORTING_CURRENCY", domain.CurrencyEUR)
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_DEPOSIT_TOPIC", "deposits")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		FrontendBaseURL:        v.GetString("FRONTEND_BASE_URL"),
		MigrationsPath:         v.GetString("MIGRATIONS_PATH"),
		ExchangeRateAPIKey:     v.GetString("EXCHANGE_RATE_API_KEY"),
		ExchangeRateAPIBaseURL: strings.TrimRight(v.GetString("EXCHANGE_RATE_API_BASE_URL"), "/"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		KafkaBrokers:           splitList(v.GetString("KAFKA_BROKERS")),
		KafkaDepositTopic:      v.GetString("KAFKA_DEPOSIT_TOPIC"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.ExchangeRateAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATE_API_KEY not set. Exchange rates will come from the static table.")
	}

	cfg.ExchangeRateStaleAfter = parseDuration(v, "EXCHANGE_RATE_STALE_AFTER", defaultRateStaleAfter)
	cfg.ExchangeRateFetchTimeout = parseDuration(v, "EXCHANGE_RATE_FETCH_TIMEOUT", defaultRateFetchTimeout)

	rate, err := domain.ParseCommissionRate(v.GetString("PLATFORM_COMMISSION_RATE"))
	if err != nil {
		return nil, fmt.Errorf("PLATFORM_COMMISSION_RATE: %w", err)
	}
	cfg.PlatformCommissionRate = rate

	cfg.ReportingCurrency = domain.NormalizeCurrencyCode(v.GetString("REPORTING_CURRENCY"))
	if !domain.IsSupportedCurrency(cfg.ReportingCurrency) {
		return nil, fmt.Errorf("REPORTING_CURRENCY: unsupported currency %q", cfg.ReportingCurrency)
	}

	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Idempotency keys will be ignored.")
	}
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Warning: KAFKA_BROKERS not set. Deposit events will not be published.")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
