package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/vokinneberg/ocean-query/internal/app"
	"github.com/vokinneberg/ocean-query/internal/config"
	"github.com/vokinneberg/ocean-query/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	query := strings.TrimSpace(strings.Join(cfg.Args, " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "Usage: ask [flags] <query>")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	dispatcher, err := app.NewDispatcher(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create dispatcher", zap.Error(err))
	}

	result := dispatcher.Resolve(context.Background(), query)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Fatal("Failed to encode result", zap.Error(err))
	}
}
