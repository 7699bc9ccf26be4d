package main

import (
	"context"
	"testing"

	"gridiron/sim/internal/config"
	"gridiron/sim/internal/game"
	"gridiron/sim/internal/random"
	"gridiron/sim/internal/roster"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultGame(t *testing.T) *game.Game {
	t.Helper()
	home, away, err := roster.Default().Matchup("HOM", "AWY")
	require.NoError(t, err)
	return game.NewGame(home, away, game.DefaultOptions())
}

func TestRun_PlaysToCompletion(t *testing.T) {
	g := newDefaultGame(t)
	rng := random.New(31)
	g.SimulateOpeningCoinFlip(rng)

	err := run(context.Background(), g, rng, 5000)
	require.NoError(t, err)
	assert.True(t, g.IsOver())
}

func TestRun_PlayLimit(t *testing.T) {
	g := newDefaultGame(t)
	rng := random.New(32)
	g.SimulateOpeningCoinFlip(rng)

	err := run(context.Background(), g, rng, 3)
	assert.ErrorContains(t, err, "play limit of 3 reached")
	assert.Equal(t, 3, g.Plays())
}

func TestRun_Cancelled(t *testing.T) {
	g := newDefaultGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, g, random.New(33), 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, g.Plays())
}

func TestLoadRosters(t *testing.T) {
	rosters, err := loadRosters(&config.Config{})
	require.NoError(t, err)
	assert.Len(t, rosters.List(), 2)

	rosters, err = loadRosters(&config.Config{RosterFile: "../../configs/rosters.yaml"})
	require.NoError(t, err)
	_, _, err = rosters.Matchup("HCG", "PRB")
	assert.NoError(t, err)

	_, err = loadRosters(&config.Config{RosterFile: "does-not-exist.yaml"})
	assert.Error(t, err)
}

func TestConfigureLogger_Level(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	tests := []struct {
		name  string
		cfg   config.Config
		level zerolog.Level
	}{
		{"development debug", config.Config{AppEnv: "development", LogLevel: "debug"}, zerolog.DebugLevel},
		{"production warn", config.Config{AppEnv: "production", LogLevel: "warn"}, zerolog.WarnLevel},
		{"unknown level", config.Config{AppEnv: "production", LogLevel: "loud"}, zerolog.InfoLevel},
		{"empty level", config.Config{AppEnv: "development"}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			assert.Equal(t, tt.level, configureLogger(&cfg))
			assert.Equal(t, tt.level, zerolog.GlobalLevel())
		})
	}
}
