// Package main provides the calculator microservice.
//
// This service exposes REST APIs for:
//   - Addition, subtraction, multiplication and division of two operands
//   - Health checks
//
// The service runs on port 8080 by default and supports:
//   - Prometheus metrics
//   - Structured logging
//   - Optional OpenTelemetry tracing
//
// Usage:
//
//	./calculator-service
//
// Environment:
//
//	PORT / CALC_PORT: Server port (default: 8080)
//	CALC_BASE_PATH: Route prefix (default: /api/calculator)
//	CALC_CONFIG: Optional YAML config file
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"calculator-service/calculator"
	"calculator-service/config"
	"calculator-service/handlers"
	"calculator-service/logger"
	"calculator-service/middleware"
	"calculator-service/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const version = "1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel)
	defer logger.Sync()

	logger.Logger.Info("Starting calculator service",
		zap.String("addr", cfg.Addr()),
		zap.String("base_path", cfg.BasePath),
		zap.String("version", version),
	)

	tel, err := telemetry.New(context.Background(), telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		Exporter:       cfg.Tracing.Exporter,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
	})
	if err != nil {
		logger.Logger.Fatal("Telemetry setup failed", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)
	router := setupRouter(cfg, tel.Tracer())

	// Setup server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server listening", zap.String("addr", cfg.Addr()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	GracefulShutdown(server, tel, cfg)
}

// setupRouter configures and returns the Gin router with all routes and middleware
func setupRouter(cfg *config.Config, tracer trace.Tracer) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.TracingMiddleware(tracer))
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, handlers.Recovery))
	if cfg.CORS.Enabled {
		router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	}

	// Liveness probe at the root, independent of the base path
	router.GET("/health", handlers.HealthCheck)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupCalculatorRoutes(router, cfg.BasePath)

	return router
}

// setupCalculatorRoutes configures the calculator route group
func setupCalculatorRoutes(router *gin.Engine, basePath string) {
	api := router.Group(basePath)
	{
		for _, op := range calculator.Operations {
			api.GET("/"+string(op), handlers.Calculate(op))
		}
		if basePath != "/" {
			api.GET("/health", handlers.HealthCheck)
		}
	}
}

// GracefulShutdown handles graceful server shutdown
func GracefulShutdown(server *http.Server, tel *telemetry.Telemetry, cfg *config.Config) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := tel.Shutdown(ctx); err != nil {
		logger.Logger.Error("Telemetry shutdown failed", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
