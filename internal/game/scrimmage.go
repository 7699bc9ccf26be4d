package game

import (
	"fmt"
	"math/rand/v2"

	"gridiron/sim/internal/metrics"
	"gridiron/sim/internal/playcall"

	"github.com/rs/zerolog/log"
)

// scrimmageClockEstimate is the nominal duration of a scrimmage play
const scrimmageClockEstimate = 25

// simulateScrimmage has both coaches call a play and advances the down with
// no gain. Run and pass resolution are not modeled.
func (g *Game) simulateScrimmage(rng *rand.Rand) {
	offense := g.TeamInPossession()
	defense := g.TeamDefending()
	offenseAway := g.Context.Possession.PossessionAway

	offensiveCall := playcall.CallOffense(&offense.Coach, &g.Context, !offenseAway, rng)
	defensiveCall := playcall.CallDefense(&defense.Coach, &g.Context, offenseAway, rng)

	elapsed := g.Context.Clock.Increment(scrimmageClockEstimate, rng)
	g.Context.Possession.Increment(0)

	message := fmt.Sprintf("%s runs %s into %s, no gain", offense.Abbreviation, offensiveCall, defensiveCall)
	if g.Context.Possession.PossessionAway != offenseAway {
		message += ", turnover on downs"
	}

	g.record(message)
	metrics.RecordPlay("scrimmage", elapsed)

	log.Debug().
		Str("game_id", g.ID.String()).
		Str("offense", offensiveCall.String()).
		Str("defense", defensiveCall.String()).
		Int("clock_seconds", elapsed).
		Msg("Scrimmage play called")
}
