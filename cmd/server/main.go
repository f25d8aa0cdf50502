package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petshare/internal/config"
	"petshare/internal/database"
	"petshare/internal/middleware"
	"petshare/internal/observability"
	"petshare/internal/server"

	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := run(); err != nil {
		middleware.Logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run owns every resource the daemon opens; deferred cleanup fires on both the
// clean-shutdown and error paths.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "petshare",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSamplerRatio,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			middleware.Logger.Error("failed to shut down tracing", slog.String("error", err.Error()))
		}
	}()

	// Storage must come up before the API: a server with no working
	// database would serve nothing but degraded reads.
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			middleware.Logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	srv := server.NewServer(cfg, db)

	app := fiber.New(fiber.Config{
		AppName: "petshare",
	})
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		middleware.Logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("failed to shut down server", slog.String("error", err.Error()))
		}
	}()

	middleware.Logger.Info("starting server", slog.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
