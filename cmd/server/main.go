package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Kamar-Folarin/tcg-tracker/internal/api"
	"github.com/Kamar-Folarin/tcg-tracker/internal/app"
	"github.com/Kamar-Folarin/tcg-tracker/internal/config"
	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := app.NewLogger(os.Stdout, cfg.LogLevel, true)
	if err != nil {
		logger.Warnf("Falling back to info level: %v", err)
	}

	if cfg.DBConnectionString == "" {
		logger.Fatal("Missing required configuration (DB_CONNECTION_STRING must be set)")
	}
	if cfg.CatalogAPI.APIKey == "" {
		logger.Warn("TCG_API_KEY is not set, catalog API requests will be rate limited more aggressively")
	}

	// Initialize database
	dbStore, err := db.NewPostgresStore(cfg.DBConnectionString)
	if err != nil {
		if hint := db.Diagnose(err).Hint; hint != "" {
			logger.Error(hint)
		}
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer dbStore.Close()

	// Run migrations with retry logic
	if err := retry(3, 5*time.Second, func() error {
		return dbStore.Migrate()
	}); err != nil {
		logger.Fatalf("Failed to run migrations after retries: %v", err)
	}

	services, err := app.New(cfg, dbStore, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize services: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.SetupRouter(services.Handler())

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}

	if status := services.Engine.Status(); status.IsRunning() {
		logger.WithField("cards_processed", status.CardsProcessed).Info("Waiting for catalog sync to finish")
		done := make(chan struct{})
		go func() {
			services.Engine.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-shutdownCtx.Done():
			logger.Warn("Catalog sync still running at shutdown, leaving it unfinished")
		}
	}
	logger.Info("Server exited properly")
}

// retry retries a function up to a certain number of attempts with a delay between attempts
func retry(attempts int, sleep time.Duration, fn func() error) error {
	if err := fn(); err != nil {
		if attempts--; attempts > 0 {
			time.Sleep(sleep)
			return retry(attempts, sleep, fn)
		}
		return err
	}
	return nil
}
