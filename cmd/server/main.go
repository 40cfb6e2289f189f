package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"blog-comments/internal/config"
	"blog-comments/internal/handler"
	"blog-comments/internal/infrastructure/database"
	"blog-comments/internal/logger"
	"blog-comments/internal/metrics"
	"blog-comments/internal/repository"
	"blog-comments/internal/service"
	"blog-comments/internal/validator"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	ctx := context.Background()

	// Connect to database
	pool, err := database.NewPostgres(ctx, cfg.PoolConfig())
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	db, err := database.NewGorm(pool, database.GormConfig{
		Logger:        logger.Default(),
		SlowThreshold: cfg.DBSlowQueryThreshold,
	})
	if err != nil {
		logger.Fatal("Failed to open ORM session",
			slog.String("error", err.Error()))
	}
	metrics.LogPoolStats(ctx, logger.Default(), pool)

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(cfg.PoolStatsInterval)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	publicationRepo := repository.NewGormPublicationRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)

	// Initialize services and handlers
	commentService := service.NewCommentService(publicationRepo, commentRepo)
	commentHandler := handler.NewCommentHandler(commentService, validator.NewValidator())
	healthHandler := handler.NewHealthHandler(pool, version)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(commentHandler, healthHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
