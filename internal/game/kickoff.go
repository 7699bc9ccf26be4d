package game

import (
	"fmt"
	"math/rand/v2"

	"gridiron/sim/internal/gamestate"
	"gridiron/sim/internal/metrics"
	"gridiron/sim/internal/models"
	"gridiron/sim/internal/random"

	"github.com/rs/zerolog/log"
)

const (
	// Kick distances are sampled into [MinKickDistance, MaxKickDistance]
	MinKickDistance = 30
	MaxKickDistance = 80

	// TouchbackDistance is the longest kick that stays in the field of play
	TouchbackDistance = 65
	// FairCatchDistance is the shortest kick a returner may fair catch beyond
	FairCatchDistance = 55
	// TouchbackYardLine is where the receiving team takes over after a
	// touchback or fair catch
	TouchbackYardLine = 25

	kickConcentration   = 5
	returnConcentration = 5

	// Nominal game clock estimates in seconds
	touchbackClockEstimate     = 5
	returnClockPerTackleBroken = 2
)

// returnResult is the outcome of the return loop
type returnResult struct {
	yards         int
	iterations    int
	tacklesBroken int
	touchdown     bool
	tackled       bool
	narrative     string
}

// simulateKickoff runs the kick, catch and return stages. Each stage may end
// the play; the whole kickoff produces a single log entry.
func (g *Game) simulateKickoff(rng *rand.Rand) {
	// The opening kickoff starts the first quarter
	if g.Context.Clock.Start() {
		metrics.RecordQuarter(gamestate.QuarterFirst.String())
	}

	kicker := g.TeamInPossession().SpecialTeams.Kicker()
	g.resolveKickoff(kickDistance(kicker, rng), rng)
}

// kickDistance samples a kick length shaped by the kicker's kicking rating
func kickDistance(kicker *models.Player, rng *rand.Rand) int {
	mean := random.ClampMean(float64(kicker.Kicking) / 10)
	return int(random.BetaRange(mean, kickConcentration, MinKickDistance, MaxKickDistance, rng))
}

// resolveKickoff resolves a kick of the given distance from the kicking
// team's own 35
func (g *Game) resolveKickoff(distance int, rng *rand.Rand) {
	kicker := g.TeamInPossession().SpecialTeams.Kicker()
	message := fmt.Sprintf("%s kicks %d yards", kicker.Name, distance)

	// Kick: out of the end zone
	if distance > TouchbackDistance {
		message += " for a touchback"
		elapsed := g.awardTouchback(rng)
		g.finishKickoff("touchback", message, elapsed)
		return
	}

	// Catch: a long kick may be fair caught
	returner := g.TeamDefending().SpecialTeams.KickReturner()
	if distance > FairCatchDistance && random.Coin(rng) {
		message += fmt.Sprintf(", %s calls for a fair catch", returner.Name)
		elapsed := g.awardTouchback(rng)
		g.finishKickoff("fair_catch", message, elapsed)
		return
	}

	// Return: the receiving team takes over at the catch spot
	p := &g.Context.Possession
	p.FlipPossession()
	p.SetYardLine(2*gamestate.GoalLine-gamestate.KickoffYardLine-distance, true)
	message += fmt.Sprintf(", %s fields the kick at the %d", returner.Name, p.YardLine())

	result := g.runReturn(returner, rng)
	message += result.narrative
	metrics.RecordReturn(result.iterations)

	elapsed := g.Context.Clock.Increment(returnClockPerTackleBroken*(result.tacklesBroken+1), rng)
	message += fmt.Sprintf(", gain of %d yards", result.yards)

	p.Increment(result.yards)
	outcome := "return"
	if p.Down == gamestate.DownPointAfter {
		message += " for a touchdown!"
		g.Context.Score.Add(p.PossessionAway, gamestate.PointsTouchdown)
		metrics.RecordPoints("kickoff_return", gamestate.PointsTouchdown)
		outcome = "touchdown"
	} else {
		p.StartDrive()
	}

	g.finishKickoff(outcome, message, elapsed)
}

// awardTouchback gives the receiving team the ball at its own 25 with a
// fresh set of downs. Shared by touchbacks and fair catches.
func (g *Game) awardTouchback(rng *rand.Rand) int {
	p := &g.Context.Possession
	p.FlipPossession()
	p.SetYardLine(TouchbackYardLine, true)
	p.StartDrive()

	return g.Context.Clock.Increment(touchbackClockEstimate, rng)
}

// runReturn iterates blocks, defender encounters and tackle attempts until
// the returner is tackled, scores, or is pushed out of bounds.
func (g *Game) runReturn(returner *models.Player, rng *rand.Rand) returnResult {
	receiving := g.TeamInPossession().SpecialTeams
	covering := g.TeamDefending().SpecialTeams

	// Probability the coverage unit gets through the return blockers
	penetration := random.DiffProbability(covering.KickoffCoverageBlocking() - receiving.KickoffBlockersBlocking())
	toEndzone := g.Context.Possession.YardsToEndzone()

	var result returnResult
	for result.iterations < g.opts.MaxReturnIterations {
		result.iterations++

		var defender *models.Player
		if random.Bernoulli(penetration, rng) {
			defender = covering.RandomKickoffDefender(rng)
			mean := random.ClampMean(random.DiffProbability(float64(returner.Running - defender.Running)))
			result.yards += int(random.Beta(mean, returnConcentration, rng)*10 - 2)
		} else {
			mean := random.ClampMean(float64(returner.Running) / 10)
			result.yards += int(random.Beta(mean, returnConcentration, rng) * 10)
		}

		if result.yards >= toEndzone {
			result.yards = toEndzone
			result.touchdown = true
			return result
		}

		if defender == nil {
			continue
		}

		tackle := random.DiffProbability(float64(returner.Running - defender.Tackling))
		if random.Bernoulli(tackle, rng) {
			result.tackled = true
			result.narrative += fmt.Sprintf(", is brought down by %s", defender.Name)
			return result
		}
		result.tacklesBroken++
		result.narrative += fmt.Sprintf(", breaks %s's tackle", defender.Name)
	}

	result.narrative += ", is pushed out of bounds"
	return result
}

// finishKickoff logs the play once the state reflects its outcome
func (g *Game) finishKickoff(outcome, message string, elapsed int) {
	g.record(message)
	metrics.RecordKickoff(outcome)
	metrics.RecordPlay("kickoff", elapsed)

	log.Debug().
		Str("game_id", g.ID.String()).
		Str("outcome", outcome).
		Int("clock_seconds", elapsed).
		Msg("Kickoff resolved")
}
