package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"gridiron/sim/internal/config"
	"gridiron/sim/internal/game"
	"gridiron/sim/internal/roster"

	"github.com/rs/zerolog/log"
)

// loadRosters reads the configured roster file, or falls back to the
// built-in teams when none is set
func loadRosters(cfg *config.Config) (*roster.Repository, error) {
	if cfg.RosterFile == "" {
		log.Info().Msg("No roster file configured, using built-in teams")
		return roster.Default(), nil
	}

	rosters, err := roster.Load(cfg.RosterFile)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("file", cfg.RosterFile).
		Int("teams", len(rosters.List())).
		Msg("Rosters loaded")

	return rosters, nil
}

// run simulates plays until the game ends, the play limit is reached, or
// ctx is cancelled
func run(ctx context.Context, g *game.Game, rng *rand.Rand, maxPlays int) error {
	start := time.Now()

	for i := 0; i < maxPlays; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("simulation cancelled after %d plays: %w", g.Plays(), ctx.Err())
		default:
		}

		err := g.SimulateNextPlay(rng)
		if errors.Is(err, game.ErrGameOver) {
			log.Info().
				Int("plays", g.Plays()).
				Dur("duration", time.Since(start)).
				Msg("Simulation finished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to simulate play: %w", err)
		}
	}

	return fmt.Errorf("play limit of %d reached before the game ended", maxPlays)
}
