package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/light-bringer/grocery-service/internal/services"
	transport "github.com/light-bringer/grocery-service/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration from environment variables
	config := loadConfig()

	log.Printf("Starting Grocery Store Service...")
	log.Printf("Spanner Database: %s", config.SpannerDB)
	log.Printf("HTTP Port: %s", config.HTTPPort)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, services.Config{
		SpannerDB:     config.SpannerDB,
		SecureCookies: config.SecureCookies,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create HTTP server
	httpServer := transport.NewServer(":"+config.HTTPPort, serviceOpts.Router)

	// 4. Start HTTP server in background
	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on :%s", config.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case sig := <-sigCh:
		log.Printf("Received %s, shutting down gracefully...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	return nil
}

// Config holds application configuration.
type Config struct {
	SpannerDB     string
	HTTPPort      string
	SecureCookies bool
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() Config {
	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		// Default for local development with emulator
		spannerDB = "projects/test-project/instances/dev-instance/databases/grocery-store-db"
	}

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	return Config{
		SpannerDB:     spannerDB,
		HTTPPort:      httpPort,
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}
}
