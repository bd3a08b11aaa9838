// Package main is the entry point for the travel-catalog-service API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/config"
	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/infra/geo"
	"travel-catalog-service/internal/infra/postgres"
	"travel-catalog-service/internal/infra/postgres/migrations"
	rediscache "travel-catalog-service/internal/infra/redis"
	"travel-catalog-service/internal/job"
	"travel-catalog-service/internal/logger"
	"travel-catalog-service/internal/transport/httpserver"
	"travel-catalog-service/internal/validator"
	"travel-catalog-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting travel-catalog-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := postgres.NewConnection(
		postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			Name:         cfg.Database.Name,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		},
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = postgres.Close(db) }()

	// Run migrations
	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database migrations completed")

	// Create repositories
	packageRepo := postgres.NewPackageRepository(db)
	destinationRepo := postgres.NewDestinationRepository(db)
	departureRepo := postgres.NewDepartureRepository(db)
	holidayTypeRepo := postgres.NewHolidayTypeRepository(db)
	contentRepo := postgres.NewContentRepository(db)

	// Geo directory client
	geoClient := geo.NewClient(
		geo.ClientConfig{
			BaseURL: cfg.Geo.BaseURL,
			APIKey:  cfg.Geo.APIKey,
			Timeout: cfg.Geo.Timeout,
			Retry: geo.RetryConfig{
				MaxAttempts: cfg.Geo.Retry.MaxAttempts,
				WaitTime:    cfg.Geo.Retry.WaitTime,
				MaxWaitTime: cfg.Geo.Retry.MaxWaitTime,
			},
			CB: geo.CBConfig{
				MaxRequests:  cfg.Geo.CB.MaxRequests,
				Interval:     cfg.Geo.CB.Interval,
				Timeout:      cfg.Geo.CB.Timeout,
				FailureRatio: cfg.Geo.CB.FailureRatio,
			},
		},
		log.Logger,
	)

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()
	log.Info("connected to Redis",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)

	// Create cache implementation (optional, based on config)
	var cache domain.Cache
	if cfg.Cache.Enabled {
		cache = rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		log.Info("cache enabled",
			zap.Duration("suggest_ttl", cfg.Cache.SuggestTTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	} else {
		log.Info("cache disabled")
	}

	// Create services
	packageSvc := service.NewPackageService(packageRepo, cache, log.Logger)
	destinationSvc := service.NewDestinationService(destinationRepo, cache, log.Logger)
	departureSvc := service.NewDepartureService(departureRepo, log.Logger)
	holidayTypeSvc := service.NewHolidayTypeService(holidayTypeRepo, cache, log.Logger)
	contentSvc := service.NewContentService(contentRepo, log.Logger)
	locationSvc := service.NewLocationService(geoClient, cache, log.Logger)
	suggestSvc := service.NewSuggestService(
		packageRepo,
		destinationRepo,
		holidayTypeRepo,
		cache,
		cfg.Cache.SuggestTTL,
		log.Logger,
	)

	// Create distributed locker
	distLocker := locker.NewRedisLocker(redisClient, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:         cfg.App.Port,
			BodyLimit:    4 * 1024 * 1024, // itineraries with inline images get big
			Debug:        cfg.App.Debug,
			AllowOrigins: cfg.App.AllowOrigins,
			BaseURL:      cfg.App.BaseURL,
		},
		httpserver.Services{
			Packages:     packageSvc,
			Destinations: destinationSvc,
			Departures:   departureSvc,
			HolidayTypes: holidayTypeSvc,
			Suggest:      suggestSvc,
			Content:      contentSvc,
			Locations:    locationSvc,
		},
		db,
		v,
		log.Logger,
	)

	// Start departure status scheduler with distributed locking
	scheduler := job.NewStatusScheduler(
		departureSvc,
		job.StatusConfig{
			Interval:  cfg.Job.Interval,
			Timeout:   cfg.Job.Timeout,
			OnStartup: cfg.Job.OnStartup,
		},
		log.Logger,
		distLocker,
	)
	scheduler.Start(cfg.Job.OnStartup)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		scheduler.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
