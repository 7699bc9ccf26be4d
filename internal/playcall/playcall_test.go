package playcall

import (
	"testing"

	"gridiron/sim/internal/gamestate"
	"gridiron/sim/internal/models"
	"gridiron/sim/internal/random"

	"github.com/stretchr/testify/assert"
)

func TestTendency_Observe(t *testing.T) {
	tn := newTendency()
	tn.observe(1)
	assert.InDelta(t, 0.75, tn.p, 1e-9)
	assert.Equal(t, 2, tn.n)

	tn.observe(0.5)
	assert.InDelta(t, 2.0/3.0, tn.p, 1e-9)
	assert.Equal(t, 3, tn.n)
}

func TestOffense_Tendencies(t *testing.T) {
	tests := []struct {
		name    string
		coach   models.Coach
		score   gamestate.Score
		isHome  bool
		runP    float64
		insideP float64
		longP   float64
	}{
		{
			name:    "run style aggressive tied",
			coach:   models.Coach{OffensiveStyle: models.OffensiveStyleRun, Aggressiveness: 10},
			isHome:  true,
			runP:    2.0 / 3.0,
			insideP: 0.75,
			longP:   0.75,
		},
		{
			name:    "pass style timid winning",
			coach:   models.Coach{OffensiveStyle: models.OffensiveStylePass, Aggressiveness: 0},
			score:   gamestate.Score{Home: 7},
			isHome:  true,
			runP:    0.5,
			insideP: 0.25,
			longP:   0.25,
		},
		{
			name:    "balanced away losing",
			coach:   models.Coach{Aggressiveness: 5},
			score:   gamestate.Score{Home: 7},
			isHome:  false,
			runP:    1.0 / 3.0,
			insideP: 0.5,
			longP:   0.5,
		},
		{
			name:    "aggressiveness above range is clamped",
			coach:   models.Coach{Aggressiveness: 14},
			score:   gamestate.Score{Away: 3},
			isHome:  false,
			runP:    2.0 / 3.0,
			insideP: 0.75,
			longP:   0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := gamestate.NewContext()
			ctx.Score = tt.score

			got := Offense(&tt.coach, &ctx, tt.isHome)
			assert.InDelta(t, tt.runP, got.Run, 1e-9, "Run probability")
			assert.InDelta(t, tt.insideP, got.Inside, 1e-9, "Inside probability")
			assert.InDelta(t, tt.longP, got.Long, 1e-9, "Long probability")
		})
	}
}

func TestDefense_Tendencies(t *testing.T) {
	coach := models.Coach{DefensiveStyle: models.DefensiveStyleBlitz, Aggressiveness: 8}
	ctx := gamestate.NewContext()
	ctx.Score = gamestate.Score{Home: 3, Away: 10}

	// Away side is winning
	got := Defense(&coach, &ctx, false)
	assert.InDelta(t, 5.0/6.0, got.Blitz, 1e-9)
	assert.InDelta(t, 0.65, got.AllOutBlitz, 1e-9)
	assert.InDelta(t, 0.5, got.Zone, 1e-9, "Nothing feeds man-vs-zone")
	assert.InDelta(t, 0.65, got.ZoneDepth, 1e-9)

	// Same coach on the trailing side
	got = Defense(&coach, &ctx, true)
	assert.InDelta(t, 0.5, got.Blitz, 1e-9)
}

func TestOffensiveTendencies_CallExtremes(t *testing.T) {
	rng := random.New(3)

	for i := 0; i < 50; i++ {
		assert.Equal(t, InsideRun, OffensiveTendencies{Run: 1, Inside: 1, Long: 0.5}.Call(rng))
		assert.Equal(t, OutsideRun, OffensiveTendencies{Run: 1, Inside: 0, Long: 0.5}.Call(rng))
		assert.False(t, OffensiveTendencies{Run: 0, Inside: 1, Long: 0.5}.Call(rng).IsRun())
	}
}

func TestOffensiveTendencies_InsideUsesInsideProbability(t *testing.T) {
	rng := random.New(8)

	// A deep passing tendency must not leak into the inside/outside trial
	for i := 0; i < 50; i++ {
		play := OffensiveTendencies{Run: 1, Inside: 0, Long: 1}.Call(rng)
		assert.Equal(t, OutsideRun, play)
	}
}

func TestDefensiveTendencies_CallExtremes(t *testing.T) {
	rng := random.New(5)

	for i := 0; i < 50; i++ {
		assert.Equal(t, AllOutBlitz, DefensiveTendencies{Blitz: 1, AllOutBlitz: 1, Zone: 0.5, ZoneDepth: 0.5}.Call(rng))
		assert.Equal(t, LightBlitz, DefensiveTendencies{Blitz: 1, AllOutBlitz: 0, Zone: 0.5, ZoneDepth: 0.5}.Call(rng))
		assert.Equal(t, ManCoverage, DefensiveTendencies{Blitz: 0, AllOutBlitz: 0.5, Zone: 0, ZoneDepth: 0.5}.Call(rng))
		assert.True(t, DefensiveTendencies{Blitz: 0, AllOutBlitz: 0.5, Zone: 1, ZoneDepth: 0.5}.Call(rng).IsZoneCoverage())
	}
}

func TestCall_DeterministicForSeed(t *testing.T) {
	coach := models.Coach{Aggressiveness: 6, OffensiveStyle: models.OffensiveStylePass}
	ctx := gamestate.NewContext()

	a, b := random.New(77), random.New(77)
	for i := 0; i < 100; i++ {
		assert.Equal(t, CallOffense(&coach, &ctx, true, a), CallOffense(&coach, &ctx, true, b))
		assert.Equal(t, CallDefense(&coach, &ctx, false, a), CallDefense(&coach, &ctx, false, b))
	}
}

func TestCall_DoesNotMutateContext(t *testing.T) {
	coach := models.Coach{Aggressiveness: 9}
	ctx := gamestate.NewContext()
	before := ctx

	CallOffense(&coach, &ctx, true, random.New(1))
	CallDefense(&coach, &ctx, true, random.New(1))

	assert.Equal(t, before, ctx)
}

func TestDepthFromSample(t *testing.T) {
	assert.Equal(t, DepthShort, DepthFromSample(0))
	assert.Equal(t, DepthShort, DepthFromSample(0.329))
	assert.Equal(t, DepthMedium, DepthFromSample(0.33))
	assert.Equal(t, DepthMedium, DepthFromSample(0.669))
	assert.Equal(t, DepthLong, DepthFromSample(0.67))
	assert.Equal(t, DepthLong, DepthFromSample(1))
}

func TestPlays_Accessors(t *testing.T) {
	assert.Equal(t, LongPass, NewOffensivePlay(false, true, DepthLong))
	assert.Equal(t, DepthLong, LongPass.PassDepth())
	assert.True(t, InsideRun.IsInsideRun())
	assert.False(t, OutsideRun.IsInsideRun())
	assert.Equal(t, "a medium pass", MediumPass.String())

	assert.Equal(t, MediumZone, NewDefensivePlay(false, true, true, DepthMedium))
	assert.Equal(t, DepthMedium, MediumZone.ZoneDepth())
	assert.True(t, AllOutBlitz.IsBlitz())
	assert.True(t, AllOutBlitz.IsAllOutBlitz())
	assert.False(t, ManCoverage.IsZoneCoverage())
	assert.Equal(t, "a deep zone", LongZone.String())
}

func TestDefensivePlay_IsZoneCoverage(t *testing.T) {
	tests := []struct {
		play DefensivePlay
		zone bool
	}{
		{LightBlitz, false},
		{AllOutBlitz, false},
		{ManCoverage, false},
		{ShortZone, true},
		{MediumZone, true},
		{LongZone, true},
	}

	for _, tt := range tests {
		t.Run(tt.play.String(), func(t *testing.T) {
			assert.Equal(t, tt.zone, tt.play.IsZoneCoverage())
		})
	}
}
