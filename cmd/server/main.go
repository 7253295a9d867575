package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vokinneberg/ocean-query/internal/app"
	"github.com/vokinneberg/ocean-query/internal/config"
	"github.com/vokinneberg/ocean-query/internal/logging"

	httphandler "github.com/vokinneberg/ocean-query/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize dispatcher with its remote backend and fallback
	dispatcher, err := app.NewDispatcher(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create dispatcher", zap.Error(err))
	}
	logger.Info("Initialized query dispatcher", zap.String("remote_mode", cfg.RemoteMode))

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(dispatcher, logger.Named("http"))

	// Create router
	r := httphandler.NewRouter(handler, cfg.CORSOrigins)

	// A query may wait for the remote timeout and then for the simulated latency
	writeTimeout := cfg.RemoteTimeout + cfg.LatencyMax + 5*time.Second

	// Create HTTP server
	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server running", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited")
}
