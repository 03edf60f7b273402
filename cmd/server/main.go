package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ekaraca/phishdrill/internal/dependencies/clock"
	"github.com/ekaraca/phishdrill/internal/dependencies/random"
	"github.com/ekaraca/phishdrill/internal/server"
	"github.com/ekaraca/phishdrill/internal/server/content"
	"github.com/ekaraca/phishdrill/internal/server/engine"
	"github.com/ekaraca/phishdrill/internal/storage"
	"github.com/ekaraca/phishdrill/internal/storage/memory"
	redisstorage "github.com/ekaraca/phishdrill/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Choose the storage backend from the environment
	var store storage.Storage
	switch os.Getenv("STORAGE_TYPE") {
	case "redis":
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			logger.Error("failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("using redis storage", slog.String("url", redisURL))
	default:
		store = memory.New()
		logger.Info("using in-memory storage")
	}

	// Load the embedded question banks
	banks, err := content.Load()
	if err != nil {
		logger.Error("failed to load question banks", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("question banks loaded",
		slog.Int("phishing_questions", len(banks.Phishing)),
		slog.Int("password_questions", len(banks.Password)),
	)

	clk := clock.New()
	eng := engine.NewEngine(store, banks, clk, random.New(), logger)

	router := server.NewRouter(server.RouterConfig{
		Logger:  logger,
		Engine:  eng,
		Storage: store,
		Clock:   clk,
	})

	serverConfig := server.DefaultConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}

	srv := server.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("server started", slog.String("addr", srv.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
