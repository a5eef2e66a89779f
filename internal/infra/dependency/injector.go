// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/strength-check/backend/config"
	"github.com/strength-check/backend/internal/application/adapter"
	"github.com/strength-check/backend/internal/application/usecase/strength"
	"github.com/strength-check/backend/internal/application/usecase/tweet"
	"github.com/strength-check/backend/internal/infra/server/router"
	"github.com/strength-check/backend/internal/infra/worker"
	"github.com/strength-check/backend/internal/integration/adapters"
	"github.com/strength-check/backend/internal/integration/entrypoint/controller"
	"github.com/strength-check/backend/internal/integration/entrypoint/middleware"
	"github.com/strength-check/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Registry *prometheus.Registry
	Metrics  *adapters.StrengthMetrics
	Router   *router.Router
	// Janitor is set when rate limit counters live in process memory.
	Janitor *worker.Janitor
}

// NewInjector creates a new dependency injector with all dependencies wired.
// db and redisClient may be nil; the features that need them degrade accordingly.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := adapters.NewStrengthMetrics(registry)

	// Create repositories
	var evaluationRepo adapter.EvaluationRepository
	if db != nil {
		evaluationRepo = persistence.NewEvaluationRepository(db)
	}

	// Outcomes are only recorded when enabled; statistics still read whatever exists.
	var recordingRepo adapter.EvaluationRepository
	if cfg.Evaluation.RecordOutcomes {
		recordingRepo = evaluationRepo
	}

	// Create strength use cases
	evaluateUseCase := strength.NewEvaluatePasswordUseCase(recordingRepo, metrics)
	batchUseCase := strength.NewEvaluateBatchUseCase(evaluateUseCase, cfg.Evaluation.MaxBatchSize)
	statsUseCase := strength.NewGetStatsUseCase(evaluationRepo)

	// Create tweet use cases
	parseCoordinatesUseCase := tweet.NewParseCoordinatesUseCase()
	validateSchemaUseCase := tweet.NewValidateSchemaUseCase()

	// Create controllers
	var dbHealthChecker func() bool
	if db != nil {
		dbHealthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}

	var redisStore *adapters.RedisRateLimitStore
	var redisHealthChecker func() bool
	if redisClient != nil {
		redisStore = adapters.NewRedisRateLimitStore(redisClient)
		redisHealthChecker = redisStore.HealthCheck
	}

	healthController := controller.NewHealthController(dbHealthChecker, redisHealthChecker)
	strengthController := controller.NewStrengthController(evaluateUseCase, batchUseCase, statsUseCase)
	tweetController := controller.NewTweetController(parseCoordinatesUseCase, validateSchemaUseCase)

	// Create middleware
	var evaluateLimiter *middleware.RateLimiter
	var janitor *worker.Janitor
	if cfg.RateLimit.Enabled {
		var store middleware.RateLimitStore
		if cfg.RateLimit.Backend == config.RateLimitBackendRedis && redisStore != nil {
			store = redisStore
		} else {
			if cfg.RateLimit.Backend == config.RateLimitBackendRedis {
				slog.Warn("Redis rate limit backend requested without a redis connection, using memory store")
			}
			memoryStore := middleware.NewMemoryRateLimitStore()
			janitor = worker.NewJanitor("rate-limit", memoryStore, cfg.RateLimit.CleanupInterval)
			store = memoryStore
		}
		evaluateLimiter = middleware.NewRateLimiterWithConfig(store, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window).
			WithObserver(metrics)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		strengthController,
		tweetController,
		evaluateLimiter,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	)

	return &Injector{
		Config:   cfg,
		DB:       db,
		Redis:    redisClient,
		Registry: registry,
		Metrics:  metrics,
		Router:   r,
		Janitor:  janitor,
	}
}
