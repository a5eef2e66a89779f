// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strength-check/backend/internal/integration/entrypoint/controller"
	"github.com/strength-check/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	strengthController *controller.StrengthController
	tweetController    *controller.TweetController
	evaluateLimiter    *middleware.RateLimiter
	metricsHandler     http.Handler
}

// NewRouter creates a new router instance with all dependencies.
// evaluateLimiter and metricsHandler may be nil.
func NewRouter(
	healthController *controller.HealthController,
	strengthController *controller.StrengthController,
	tweetController *controller.TweetController,
	evaluateLimiter *middleware.RateLimiter,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		healthController:   healthController,
		strengthController: strengthController,
		tweetController:    tweetController,
		evaluateLimiter:    evaluateLimiter,
		metricsHandler:     metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.strengthController != nil {
			passwords := v1.Group("/passwords")
			{
				evaluate := passwords.Group("/evaluate")
				if r.evaluateLimiter != nil {
					evaluate.Use(r.evaluateLimiter.Middleware())
				}
				evaluate.POST("", r.strengthController.Evaluate)
				evaluate.POST("/batch", r.strengthController.EvaluateBatch)

				passwords.GET("/stats", r.strengthController.Stats)
			}
		}

		if r.tweetController != nil {
			tweets := v1.Group("/tweets")
			{
				tweets.POST("/coordinates/parse", r.tweetController.ParseCoordinates)
				tweets.POST("/schema/validate", r.tweetController.ValidateSchema)
			}
		}
	}
}
