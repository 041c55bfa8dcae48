package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ridefeedback/internal/config"
	"ridefeedback/internal/handlers"
	"ridefeedback/internal/middleware"
	repo "ridefeedback/internal/repositories/postgres"
	"ridefeedback/internal/services"
	"ridefeedback/pkg/clients"
	"ridefeedback/pkg/database"
	"ridefeedback/pkg/logger"
	"ridefeedback/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	// Connect to the store and ensure the schema exists
	db, err := database.NewPostgres(&database.DatabaseConfig{
		URL:            cfg.Database.URL,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// External verification clients
	riderClient := clients.NewRiderClient(cfg.Services.RiderServiceURL, cfg.Services.RequestTimeout, log)
	tripClient := clients.NewTripClient(cfg.Services.TripServiceURL, cfg.Services.RequestTimeout, log)

	// Service and handlers
	ratingRepo := repo.NewRatingRepository(db.Pool)
	ratingService := services.NewRatingService(ratingRepo, riderClient, tripClient, cfg.Services.TripCheckEnabled, log)
	ratingHandler := handlers.NewRatingHandler(ratingService, log)
	healthHandler := handlers.NewHealthHandler(ratingService, log)

	// Initialize Gin router
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Health check
	router.GET("/health", healthHandler.Check)

	// API routes
	v1 := router.Group("/v1")
	{
		routes.SetupRatingRoutes(v1, ratingHandler)
	}

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.WithField("addr", addr).Infof("Starting %s", cfg.App.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}
