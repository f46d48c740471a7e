package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clubdesk/matchday/internal/common/clock"
	"github.com/clubdesk/matchday/internal/common/uuid"
	"github.com/clubdesk/matchday/internal/config"
	"github.com/clubdesk/matchday/internal/handlers/httpapi"
	"github.com/clubdesk/matchday/internal/repositories/event"
	"github.com/clubdesk/matchday/internal/repositories/matchstate"
	"github.com/clubdesk/matchday/internal/repositories/stats"
	"github.com/clubdesk/matchday/internal/services/livematch"
	"github.com/clubdesk/matchday/internal/services/notifier"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Initialize Redis client
	redisOptions, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("Failed to parse redis URL", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOptions)

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	eventRepo, err := event.NewRedis(&event.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create event repository", zap.Error(err))
	}

	stateRepo, err := matchstate.NewRedis(&matchstate.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create match state repository", zap.Error(err))
	}

	statsRepo, err := stats.NewRedis(&stats.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create stats repository", zap.Error(err))
	}

	systemClock := &clock.DefaultClock{}

	// Initialize notifier service
	notifierSvc, err := notifier.New(&notifier.Config{
		RedisClient: redisClient,
		Clock:       systemClock,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("Failed to create notifier service", zap.Error(err))
	}

	// Initialize live match service
	liveMatchSvc, err := livematch.New(&livematch.Config{
		EventRepo:     eventRepo,
		StateRepo:     stateRepo,
		StatsRepo:     statsRepo,
		Notifier:      notifierSvc,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("Failed to create live match service", zap.Error(err))
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		LiveMatchService: liveMatchSvc,
		Notifier:         notifierSvc,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP handler", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("Redis close failed", zap.Error(err))
	}

	logger.Info("Server has been shut down")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
