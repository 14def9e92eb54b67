package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/news-portal-api/internal/api"
	"github.com/news-portal-api/internal/auth"
	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/events"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/service"
	"github.com/news-portal-api/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "json")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}

// run wires the server and blocks until it is signalled to stop.
// Resources opened here are released before it returns.
func run(cfg *config.Config, log zerolog.Logger) error {
	log.Info().Msg("Starting News Portal API server...")

	// Dashboard sessions
	resolver, err := auth.NewStaticTokenResolver(cfg.Auth.Tokens)
	if err != nil {
		return fmt.Errorf("failed to parse AUTH_TOKENS: %w", err)
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.MigrateDown {
		return db.MigrateDown(cfg.Database.MigrationsPath)
	}

	// Run migrations
	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize repositories
	repos := repository.New(db.DB)

	// Content events go to kafka when brokers are configured
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Events.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic, log)
	} else {
		log.Info().Msg("KAFKA_BROKERS not set, content events disabled")
	}
	defer publisher.Close()

	// Initialize services
	services := service.NewServices(repos, cfg, publisher, log)

	// Initialize router
	router := api.NewRouter(services, resolver, db, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}
