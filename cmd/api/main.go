package main

import (
	"context"
	"log"
	"os"

	"github.com/lunafit/lunafit-backend/config"
	"github.com/lunafit/lunafit-backend/internal/database"
	"github.com/lunafit/lunafit-backend/internal/scheduler"
	"github.com/lunafit/lunafit-backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs caching and rate limiting; the API degrades without it
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, caching and rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 unavailable, plan snapshots disabled: %v", err)
		s3Config = nil
	}

	srv, err := server.New(cfg, db, redisClient, s3Config)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	sched := scheduler.New(srv.PlanService(), os.Getenv("RECALIBRATION_CRON"))
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start recalibration scheduler: %v", err)
	}
	defer sched.Stop()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
