package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lunafit/lunafit-backend/internal/api"
	"github.com/lunafit/lunafit-backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	planHandler *api.PlanHandler,
	healthHandler *api.HealthHandler,
	tokenValidator middleware.TokenValidator,
	planRateLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	// Health endpoint stays outside auth so load balancers can reach it
	router.GET("/health", healthHandler.Check)

	v1 := router.Group("/api/v1")

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokenValidator))

	// Plan generation fans out into nutrition API calls, so only those
	// routes go through the rate limiter.
	if planRateLimiter != nil {
		planHandler.RegisterRoutes(protected, planRateLimiter.RateLimitMiddleware())
	} else {
		planHandler.RegisterRoutes(protected)
	}

	return router
}
