// Package playcall turns a coach's tendencies and the live game situation
// into offensive and defensive play calls.
//
// Each call is parameterized by a handful of probabilities. Every
// probability starts at 0.5 with a weight of one observation, and each
// situational signal is folded in as one more observation of a running
// mean. Signals are applied in a fixed order: coaching style, then
// aggressiveness, then the score.
package playcall

import (
	"math/rand/v2"

	"gridiron/sim/internal/gamestate"
	"gridiron/sim/internal/models"
	"gridiron/sim/internal/random"
)

const depthConcentration = 5

// tendency is a probability maintained as a cumulative moving average
type tendency struct {
	p float64
	n int
}

func newTendency() tendency {
	return tendency{p: 0.5, n: 1}
}

// observe folds one more signal into the running mean
func (t *tendency) observe(signal float64) {
	t.p = (t.p*float64(t.n) + signal) / float64(t.n+1)
	t.n++
}

// OffensiveTendencies are the probabilities behind an offensive call
type OffensiveTendencies struct {
	Run    float64
	Inside float64
	Long   float64
}

// DefensiveTendencies are the probabilities behind a defensive call
type DefensiveTendencies struct {
	Blitz       float64
	AllOutBlitz float64
	Zone        float64
	ZoneDepth   float64
}

// Offense computes the offensive tendencies for coach in the given situation
func Offense(coach *models.Coach, ctx *gamestate.Context, isHome bool) OffensiveTendencies {
	run, inside, long := newTendency(), newTendency(), newTendency()

	switch coach.OffensiveStyle {
	case models.OffensiveStyleRun:
		run.observe(1)
	case models.OffensiveStylePass:
		run.observe(0)
	default:
		run.observe(0.5)
	}

	aggression := aggressionSignal(coach)
	inside.observe(aggression)
	long.observe(aggression)

	run.observe(scoreSignal(ctx.Score, isHome))

	return OffensiveTendencies{Run: run.p, Inside: inside.p, Long: long.p}
}

// Defense computes the defensive tendencies for coach in the given situation
func Defense(coach *models.Coach, ctx *gamestate.Context, isHome bool) DefensiveTendencies {
	blitz, allOut, zone, depth := newTendency(), newTendency(), newTendency(), newTendency()

	switch coach.DefensiveStyle {
	case models.DefensiveStyleBlitz:
		blitz.observe(1)
	case models.DefensiveStyleCoverage:
		blitz.observe(0)
	default:
		blitz.observe(0.5)
	}

	aggression := aggressionSignal(coach)
	allOut.observe(aggression)
	depth.observe(aggression)

	blitz.observe(scoreSignal(ctx.Score, isHome))

	return DefensiveTendencies{Blitz: blitz.p, AllOutBlitz: allOut.p, Zone: zone.p, ZoneDepth: depth.p}
}

// CallOffense samples an offensive play for coach
func CallOffense(coach *models.Coach, ctx *gamestate.Context, isHome bool, rng *rand.Rand) OffensivePlay {
	return Offense(coach, ctx, isHome).Call(rng)
}

// CallDefense samples a defensive play for coach
func CallDefense(coach *models.Coach, ctx *gamestate.Context, isHome bool, rng *rand.Rand) DefensivePlay {
	return Defense(coach, ctx, isHome).Call(rng)
}

// Call samples a play. Every trial is drawn regardless of the outcome of the
// others so the stream advances the same way for every call.
func (t OffensiveTendencies) Call(rng *rand.Rand) OffensivePlay {
	isRun := random.Bernoulli(random.Clamp(t.Run), rng)
	isInside := random.Bernoulli(random.Clamp(t.Inside), rng)
	depth := sampleDepth(t.Long, rng)

	return NewOffensivePlay(isRun, isInside, depth)
}

// Call samples a play. Every trial is drawn regardless of the outcome of the
// others so the stream advances the same way for every call.
func (t DefensiveTendencies) Call(rng *rand.Rand) DefensivePlay {
	isBlitz := random.Bernoulli(random.Clamp(t.Blitz), rng)
	isAllOut := random.Bernoulli(random.Clamp(t.AllOutBlitz), rng)
	isZone := random.Bernoulli(random.Clamp(t.Zone), rng)
	depth := sampleDepth(t.ZoneDepth, rng)

	return NewDefensivePlay(isBlitz, isAllOut, isZone, depth)
}

// aggressionSignal maps the 0-10 aggressiveness rating onto [0,1]
func aggressionSignal(coach *models.Coach) float64 {
	return random.Clamp(0.1 * float64(coach.Aggressiveness))
}

// scoreSignal is 1 when the coach's side leads, 0 when it trails, 0.5 when tied
func scoreSignal(score gamestate.Score, isHome bool) float64 {
	margin := score.Margin(isHome)
	switch {
	case margin > 0:
		return 1
	case margin < 0:
		return 0
	default:
		return 0.5
	}
}

func sampleDepth(p float64, rng *rand.Rand) Depth {
	return DepthFromSample(random.Beta(random.ClampMean(p), depthConcentration, rng))
}
