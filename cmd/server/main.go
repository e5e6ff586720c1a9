package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ielts-prep/reading-test-service/internal/cache"
	"github.com/ielts-prep/reading-test-service/internal/config"
	"github.com/ielts-prep/reading-test-service/internal/handlers"
	"github.com/ielts-prep/reading-test-service/internal/repositories/postgres"
	"github.com/ielts-prep/reading-test-service/internal/seed"
	"github.com/ielts-prep/reading-test-service/internal/services"
	"github.com/ielts-prep/reading-test-service/internal/utils"
	"github.com/ielts-prep/reading-test-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var logger utils.Logger
	var slogger *slog.Logger
	if cfg.Environment == "production" {
		slogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
		logger = utils.NewSlogLogger(slogger)
		gin.SetMode(gin.ReleaseMode)
	} else {
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		logger = utils.NewSlogLogger(slogger)
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	var cacheService cache.CacheService = cache.NoopCache{}
	if redisClient, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, passage caching disabled", "error", err)
	} else {
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		log.Fatalf("Error creating event publisher: %v", err)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	if err := seed.Load(context.Background(), repo, logger); err != nil {
		log.Fatalf("Error seeding data: %v", err)
	}

	validator := utils.NewValidator()
	serviceManager := services.NewServiceManager(repo, cacheService, publisher, logger, validator)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting reading test service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
