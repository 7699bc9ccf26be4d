package game

import (
	"fmt"
	"math/rand/v2"

	"gridiron/sim/internal/gamestate"
	"gridiron/sim/internal/metrics"
	"gridiron/sim/internal/random"
)

// simulatePAT attempts the extra point kick. The scoring team then kicks off
// from its own 35. The clock does not run on a try.
func (g *Game) simulatePAT(rng *rand.Rand) {
	kicker := g.TeamInPossession().SpecialTeams.Kicker()
	good := random.Bernoulli(random.Clamp(float64(kicker.Kicking)/10), rng)

	message := fmt.Sprintf("%s's extra point is no good", kicker.Name)
	if good {
		message = fmt.Sprintf("%s's extra point is good", kicker.Name)
		g.Context.Score.Add(g.Context.Possession.PossessionAway, gamestate.PointsExtraPoint)
		metrics.RecordPoints("extra_point", gamestate.PointsExtraPoint)
	}

	p := &g.Context.Possession
	p.Down = gamestate.DownKickoff
	p.SetYardLine(gamestate.KickoffYardLine, true)

	g.record(message)
	metrics.RecordPlay("extra_point", 0)
}
