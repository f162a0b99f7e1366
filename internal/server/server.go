package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lunafit/lunafit-backend/config"
	"github.com/lunafit/lunafit-backend/internal/api"
	"github.com/lunafit/lunafit-backend/internal/middleware"
	"github.com/lunafit/lunafit-backend/internal/router"
	"github.com/lunafit/lunafit-backend/internal/service"
)

// Server wires the services together and owns the HTTP listener.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	plans  *service.MealPlanService
}

// New builds the full service graph. redisClient and s3Config may be nil:
// caching, rate limiting and snapshot archiving then turn off, everything
// else keeps working.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) (*Server, error) {
	nutrition, err := service.NewNutritionService(redisClient)
	if err != nil {
		return nil, err
	}

	suggester := service.NewSuggestionService(nutrition)
	plans := service.NewMealPlanService(db, suggester)
	tokens := service.NewTokenService(cfg.JWTSecret)

	var snapshots *service.SnapshotService
	if s3Config != nil {
		snapshots = service.NewSnapshotService(s3Config)
	}

	var planLimiter *middleware.RateLimiter
	if redisClient != nil {
		planLimiter = middleware.NewPlanGenerationRateLimiter(redisClient)
	}

	planHandler := api.NewPlanHandler(plans, snapshots)
	healthHandler := api.NewHealthHandler(db, redisClient)

	return &Server{
		cfg:    cfg,
		router: router.SetupRouter(planHandler, healthHandler, tokens, planLimiter),
		plans:  plans,
	}, nil
}

// PlanService exposes the meal-plan service for the recalibration
// scheduler, which shares the server's service graph.
func (s *Server) PlanService() *service.MealPlanService {
	return s.plans
}

// Start runs the HTTP server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerAddr(),
		Handler: s.router,
	}

	go func() {
		log.Printf("[Server] listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("[Server] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
