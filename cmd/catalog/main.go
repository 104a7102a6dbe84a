// Package main is the entry point for the catalog API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopcatalog/internal/cache"
	"shopcatalog/internal/catalog"
	"shopcatalog/internal/config"
	"shopcatalog/internal/database"
	"shopcatalog/internal/faq"
	"shopcatalog/internal/handlers"
	"shopcatalog/internal/middleware"
	"shopcatalog/internal/router"
	"shopcatalog/internal/storage"
	"shopcatalog/internal/store"
)

// rateWindow is the window RATE_LIMIT is counted over.
const rateWindow = time.Minute

func main() {
	// Load configuration first so the logger can honour LOG_LEVEL/LOG_FORMAT.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var logHandler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.LogFormat == "json" {
		logHandler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Rate limiting: shared through Valkey when configured, in-process otherwise.
	var limiter middleware.Limiter
	if cfg.RateLimit > 0 {
		if cfg.ValkeyEnabled() {
			valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
			if err != nil {
				slog.Error("failed to connect to valkey", "error", err)
				os.Exit(1)
			}
			defer valkeyClient.Close()
			limiter = cache.NewWindowCounter(valkeyClient, cfg.RateLimit, rateWindow)
		} else {
			local := middleware.NewLocalLimiter(cfg.RateLimit, rateWindow)
			defer local.Stop()
			limiter = local
			slog.Info("valkey not configured, rate limiting is per instance")
		}
	} else {
		slog.Warn("rate limiting disabled")
	}

	// Connect to S3-compatible object storage (optional, image URLs are
	// then returned as stored file names).
	var images catalog.ImageResolver
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := storageClient.Ping(ctx); err != nil {
			slog.Warn("s3 storage unreachable", "error", err)
		}
		cancel()
		images = storageClient
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", storageClient.Bucket(),
		)
	} else {
		slog.Warn("s3 storage not configured, image urls disabled")
	}

	// Initialize data stores.
	categoryStore := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)
	faqStore := store.NewFAQStore(db)

	// Services and handler groups.
	catalogService := catalog.NewService(productStore, categoryStore, images)
	faqService := faq.NewService(faqStore)

	r := router.New(router.Handlers{
		Products:   handlers.NewProducts(catalogService),
		Categories: handlers.NewCategories(categoryStore),
		FAQs:       handlers.NewFAQs(faqService),
	}, limiter, rateWindow)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
