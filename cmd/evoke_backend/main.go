package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	_ "github.com/evokeessence/evoke_backend/cmd/docs"
	"github.com/evokeessence/evoke_backend/internal/adapters/events"
	"github.com/evokeessence/evoke_backend/internal/adapters/ratesapi"
	"github.com/evokeessence/evoke_backend/internal/cache"
	"github.com/evokeessence/evoke_backend/internal/core/ports/gateways"
	"github.com/evokeessence/evoke_backend/internal/core/services"
	"github.com/evokeessence/evoke_backend/internal/handlers"
	"github.com/evokeessence/evoke_backend/internal/middleware"
	"github.com/evokeessence/evoke_backend/internal/platform/config"
	"github.com/evokeessence/evoke_backend/internal/repositories/database/pgsql"
	"github.com/evokeessence/evoke_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title EvokeEssence Backend API
// @version 1.0
// @description Deposit commission, currency conversion and contractor analytics API.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := middleware.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Exchange rates: one cache for the whole process
	rateCache := cache.NewRatesCache(cfg.ExchangeRateStaleAfter)
	if cfg.ExchangeRateAPIKey == "" {
		logger.Warn("EXCHANGE_RATE_API_KEY not set, exchange rates will come from the static table")
	}
	rateClient := ratesapi.NewClient(cfg.ExchangeRateAPIBaseURL, cfg.ExchangeRateAPIKey, cfg.ExchangeRateFetchTimeout)

	var publisher gateways.DepositEventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaDepositTopic, logger)
		defer func() {
			if cerr := producer.Close(); cerr != nil {
				logger.Error("Error closing Kafka producer", slog.String("error", cerr.Error()))
			}
		}()
		publisher = producer
	} else {
		logger.Info("KAFKA_BROKERS not set, deposit events will not be published")
	}

	routeDeps := handlers.RouteDeps{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Error("Failed to connect to Redis", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close()
		routeDeps.IdempotencyStore = middleware.NewRedisIdempotencyStore(rdb)
		logger.Info("Idempotency store connected", slog.String("addr", cfg.RedisAddr))
	}

	routeDeps.RateLimiter, err = middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, rateCache, rateClient, publisher)

	warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := container.ExchangeRate.Warm(warmCtx); err != nil {
		// Not fatal: the first request fetches or falls back.
		logger.Warn("Failed to warm exchange rate cache", slog.String("error", err.Error()))
	}
	cancel()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the back-office frontend)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, routeDeps)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies every pending "up" migration over a temporary
// database/sql connection opened with the pgx stdlib driver.
func runMigrations(logger *slog.Logger, cfg *config.Config) error {
	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
