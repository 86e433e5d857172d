package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rrens/autocatalog/internal/api"
	"github.com/Rrens/autocatalog/internal/config"
	"github.com/Rrens/autocatalog/internal/feed"
	"github.com/Rrens/autocatalog/internal/repository/postgres"
	"github.com/Rrens/autocatalog/internal/repository/redis"
	"github.com/Rrens/autocatalog/internal/scheduler"
	"github.com/Rrens/autocatalog/internal/security"
	"github.com/Rrens/autocatalog/internal/service"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting auto catalog API server")

	// Initialize database
	db, err := postgres.NewDB(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Initialize Redis
	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	makeRepo := postgres.NewCarMakeRepository(db)
	modelRepo := postgres.NewCarModelRepository(db)
	yearRepo := postgres.NewCarYearRepository(db)
	listCache := redis.NewListCache(redisClient)

	// Services
	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, jwtManager)
	catalogService := service.NewCatalogService(makeRepo, modelRepo, yearRepo, listCache)
	feedClient := feed.NewClient(cfg.Sync.FeedURL, cfg.Sync.AppID, cfg.Sync.MasterKey)
	syncService := service.NewSyncService(feedClient, makeRepo, modelRepo, yearRepo, listCache, cfg.Sync.MinYear, cfg.Sync.MaxYear)

	// Scheduled reference data sync
	var syncScheduler *scheduler.Scheduler
	if cfg.Sync.Enabled {
		syncScheduler, err = scheduler.Start(cfg.Sync.Schedule, syncService)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to start sync scheduler")
		}
	}

	// Initialize router
	router := api.NewRouter(cfg, db, redisClient, jwtManager, authService, catalogService, syncService)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if syncScheduler != nil {
		syncScheduler.Stop()
	}

	log.Info().Msg("Server stopped")
}
