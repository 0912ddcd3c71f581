package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mealpicker/backend/config"
	"github.com/mealpicker/backend/internal/api"
	"github.com/mealpicker/backend/internal/database"
	"github.com/mealpicker/backend/internal/middleware"
	"github.com/mealpicker/backend/internal/router"
	"github.com/mealpicker/backend/internal/server"
	"github.com/mealpicker/backend/internal/service"
)

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "console" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg)
	ctx := context.Background()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewSigningRateLimiter(redisClient)
	} else {
		logger.Warn().Msg("Redis not configured, rate limiting disabled")
	}

	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize S3")
	}

	dishService := service.NewDishService(db, logger)
	uploadService := service.NewUploadService(s3Config, cfg.SignedURLTTL, logger)

	dishHandler := api.NewDishHandler(dishService, logger)
	uploadHandler := api.NewUploadHandler(uploadService, rateLimiter, logger)

	engine := router.SetupRouter(db, dishHandler, uploadHandler)
	srv := server.New(engine, cfg.ServerHost+":"+cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("received signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
