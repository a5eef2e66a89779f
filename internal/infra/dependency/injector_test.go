package dependency

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/strength-check/backend/config"
	"github.com/strength-check/backend/internal/integration/persistence/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		RateLimit: config.RateLimitConfig{
			Enabled:     true,
			Backend:     config.RateLimitBackendRedis,
			MaxAttempts: 2,
			Window:      time.Minute,
		},
		Evaluation: config.EvaluationConfig{
			RecordOutcomes: true,
			MaxBatchSize:   10,
		},
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.EvaluationRecordModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func serve(engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "198.51.100.7:4000"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewInjector_FullStack(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	db := openTestDB(t)
	injector := NewInjector(testConfig(), db, redisClient)
	engine := injector.Router.Setup("test")

	for i := 0; i < 2; i++ {
		if w := serve(engine, http.MethodPost, "/api/v1/passwords/evaluate", `{"password":"Abcdef1!"}`); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
	if w := serve(engine, http.MethodPost, "/api/v1/passwords/evaluate", `{"password":"Abcdef1!"}`); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 from redis-backed limiter, got %d", w.Code)
	}
	if !mr.Exists("strength-check:ratelimit:198.51.100.7") {
		t.Error("expected rate limit key in redis")
	}

	var count int64
	if err := db.Model(&model.EvaluationRecordModel{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count records: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 recorded evaluations, got %d", count)
	}

	w := serve(engine, http.MethodGet, "/api/v1/passwords/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected stats 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"strong_percent":"100.00"`) {
		t.Errorf("unexpected stats body %s", w.Body.String())
	}

	w = serve(engine, http.MethodGet, "/health", "")
	if !strings.Contains(w.Body.String(), `"database":"connected"`) || !strings.Contains(w.Body.String(), `"redis":"connected"`) {
		t.Errorf("unexpected health body %s", w.Body.String())
	}

	w = serve(engine, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, metric := range []string{
		`strength_check_evaluations_total{score="4",source="api"} 2`,
		`strength_check_rate_limit_hits_total{route="/api/v1/passwords/evaluate"} 1`,
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("expected metrics to contain %q", metric)
		}
	}
}

func TestNewInjector_WithoutBackingServices(t *testing.T) {
	cfg := testConfig()
	cfg.Evaluation.RecordOutcomes = false

	injector := NewInjector(cfg, nil, nil)
	engine := injector.Router.Setup("test")

	if w := serve(engine, http.MethodPost, "/api/v1/passwords/evaluate", `{"password":"abc"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(engine, http.MethodGet, "/api/v1/passwords/stats", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without database, got %d", w.Code)
	}

	w := serve(engine, http.MethodGet, "/health", "")
	if !strings.Contains(w.Body.String(), `"database":"disabled"`) || !strings.Contains(w.Body.String(), `"redis":"disabled"`) {
		t.Errorf("unexpected health body %s", w.Body.String())
	}
}
