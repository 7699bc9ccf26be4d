package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridiron/sim/internal/config"
	"gridiron/sim/internal/game"
	"gridiron/sim/internal/metrics"
	"gridiron/sim/internal/random"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logger
	setupLogger()

	log.Info().Msg("Starting football game simulator")

	// Load configuration
	cfg := config.MustLoad()
	configureLogger(cfg)
	log.Info().
		Str("env", cfg.AppEnv).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	// Create context that listens for cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start metrics HTTP server
	if cfg.EnableMetrics {
		go startMetricsServer(cfg.MetricsAddr())
	}

	// Load rosters
	rosters, err := loadRosters(cfg)
	if err != nil {
		metrics.RecordError("roster", "load")
		log.Fatal().Err(err).Msg("Failed to load rosters")
	}

	home, away, err := rosters.Matchup(cfg.HomeTeam, cfg.AwayTeam)
	if err != nil {
		metrics.RecordError("roster", "matchup")
		log.Fatal().Err(err).Msg("Failed to select teams")
	}

	// Seed the game's random stream
	seed := cfg.GameSeed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate seed")
		}
	}
	rng := random.New(seed)

	g := game.NewGame(home, away, game.Options{MaxReturnIterations: cfg.MaxReturnIterations})
	log.Info().
		Str("game_id", g.ID.String()).
		Str("home", home.String()).
		Str("away", away.String()).
		Int64("seed", seed).
		Msg("Game created")

	g.SimulateOpeningCoinFlip(rng)

	if err := run(ctx, g, rng, cfg.MaxPlays); err != nil {
		metrics.RecordError("game", "simulation")
		log.Error().Err(err).Msg("Simulation stopped early")
	}

	if cfg.PrintLog {
		for _, line := range g.Log.Lines() {
			fmt.Println(line)
		}
	}
	fmt.Println(g)

	// Keep serving metrics until interrupted
	if cfg.EnableMetrics {
		log.Info().Msg("Simulation complete, serving metrics until interrupted")
		<-ctx.Done()
	}

	log.Info().Msg("Simulator shutdown complete")
}

func setupLogger() {
	// Pretty console logging in development
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	// Set log level
	level := zerolog.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsedLevel, err := zerolog.ParseLevel(lvl)
		if err == nil {
			level = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("level", level.String()).
		Msg("Logger initialized")
}

// configureLogger reapplies output and level once .env values are loaded
func configureLogger(cfg *config.Config) zerolog.Level {
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	return level
}

// startMetricsServer starts the Prometheus metrics HTTP server
func startMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	log.Info().Str("addr", addr).Msg("Starting metrics server")

	if err := http.ListenAndServe(addr, nil); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Metrics server failed")
	}
}
