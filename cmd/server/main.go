package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jadavison91/gametime/internal/cache"
	"github.com/jadavison91/gametime/internal/config"
	"github.com/jadavison91/gametime/internal/espn"
	httpHandler "github.com/jadavison91/gametime/internal/handler/http"
	"github.com/jadavison91/gametime/internal/metrics"
	"github.com/jadavison91/gametime/internal/service"
	"github.com/jadavison91/gametime/internal/teams"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting gametime schedule service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shared Redis client backs the cache fallback tier and the
	// followed-team store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Metrics
	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)

	// Scoreboard client
	client := espn.NewClient(espn.Config{
		BaseURL:        cfg.ESPN.BaseURL,
		ConnectTimeout: cfg.ESPN.ConnectTimeout,
		RequestTimeout: cfg.ESPN.RequestTimeout,
		WindowDays:     cfg.ESPN.WindowDays,
		MaxConcurrent:  cfg.ESPN.MaxConcurrent,
	}, logger, recorder)
	logger.Info().Str("base_url", cfg.ESPN.BaseURL).Msg("scoreboard client initialized")

	// Layered cache: memory -> file -> Redis
	store := cache.NewStore(cache.Config{
		Dir:        cfg.Cache.Dir,
		MemoryTTL:  cfg.Cache.MemoryTTL,
		StaleAfter: cfg.Cache.StaleAfter,
	}, redisClient, logger, recorder)
	logger.Info().Str("dir", cfg.Cache.Dir).Msg("cache store initialized")

	// Followed-team selection
	teamStore := teams.NewStore(redisClient, logger)

	// Schedule orchestration
	scheduleService := service.NewScheduleService(client, store, cfg.Display.RecentWindow, logger)
	logger.Info().Msg("schedule service initialized")

	// HTTP surface
	handler := httpHandler.NewScheduleHandler(scheduleService, teamStore, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, redisClient)
	})
	mux.Handle("/metrics", promhttp.Handler())
	handler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

func configPath() string {
	if path := os.Getenv("GAMETIME_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("config/config.yaml"); err == nil {
		return "config/config.yaml"
	}
	return ""
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "gametime").Logger()
}

// healthHandler returns 200 if the service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if the service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, client *redis.Client) {
	if err := client.Ping(r.Context()).Err(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
