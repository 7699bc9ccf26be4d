// Package game drives a single football game one play at a time.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gridiron/sim/internal/gamestate"
	"gridiron/sim/internal/metrics"
	"gridiron/sim/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultMaxReturnIterations bounds the kickoff return loop
const DefaultMaxReturnIterations = 50

// Options tunes the simulation
type Options struct {
	MaxReturnIterations int
}

// DefaultOptions returns the options used when none are supplied
func DefaultOptions() Options {
	return Options{MaxReturnIterations: DefaultMaxReturnIterations}
}

// Game is a single game between two teams. It owns its situational context
// and its event log; teams are read-only.
type Game struct {
	ID       uuid.UUID
	Home     *models.Team
	Away     *models.Team
	Context  gamestate.Context
	Log      gamestate.EventLog
	CoinFlip *CoinFlip

	openingReceiverAway bool
	plays               int
	startedAt           time.Time
	opts                Options
}

// NewGame creates a pregame game between home and away
func NewGame(home, away *models.Team, opts Options) *Game {
	if opts.MaxReturnIterations <= 0 {
		opts.MaxReturnIterations = DefaultMaxReturnIterations
	}

	return &Game{
		ID:      uuid.New(),
		Home:    home,
		Away:    away,
		Context: gamestate.NewContext(),
		opts:    opts,
	}
}

// SimulateOpeningCoinFlip tosses the coin and sets up the opening kickoff.
// It logs the winner of the toss and the team receiving the opening kick.
func (g *Game) SimulateOpeningCoinFlip(rng *rand.Rand) CoinFlip {
	flip := g.tossForKickoff("opening", rng)
	g.openingReceiverAway = !flip.KickingTeamAway()

	log.Info().
		Str("game_id", g.ID.String()).
		Bool("away_won", flip.AwayTeamWon()).
		Str("decision", flip.Decision.String()).
		Str("receiving", g.team(g.openingReceiverAway).Abbreviation).
		Msg("Opening coin flip")

	return flip
}

// tossForKickoff flips the coin, hands the kickoff to the kicking team from
// its own 35, and logs the result
func (g *Game) tossForKickoff(kick string, rng *rand.Rand) CoinFlip {
	flip := FlipCoin(rng)
	g.CoinFlip = &flip

	kickingAway := flip.KickingTeamAway()
	winner := g.team(flip.AwayTeamWon())
	receiver := g.team(!kickingAway)

	p := &g.Context.Possession
	p.Down = gamestate.DownKickoff
	p.PossessionAway = kickingAway
	p.DirectionLeft = false
	p.SetYardLine(gamestate.KickoffYardLine, true)

	g.record(fmt.Sprintf("%s wins the coin flip", winner.Abbreviation))
	g.record(fmt.Sprintf("%s will receive the %s kick", receiver.Abbreviation, kick))

	return flip
}

// SimulateNextPlay simulates the next play based on the current down and
// advances the period when the clock runs out. It returns a *GameOverError
// once the game has finished.
func (g *Game) SimulateNextPlay(rng *rand.Rand) error {
	// Check if the game is over
	if g.Context.Clock.IsGameOver() {
		return &GameOverError{Message: "cannot simulate next play: game is finished"}
	}

	if g.startedAt.IsZero() {
		g.startedAt = time.Now()
	}

	// The opening receiver kicks off the second half
	if g.Context.Clock.Quarter == gamestate.QuarterHalftime {
		g.startSecondHalf()
	}

	log.Debug().
		Str("game_id", g.ID.String()).
		Str("clock", g.Context.Clock.String()).
		Str("situation", g.Context.Possession.String()).
		Msg("Simulating play")

	// Dispatch on the down
	switch g.Context.Possession.Down {
	case gamestate.DownKickoff:
		g.simulateKickoff(rng)
	case gamestate.DownPointAfter:
		g.simulatePAT(rng)
	default:
		g.simulateScrimmage(rng)
	}
	g.plays++

	g.advancePeriod(rng)

	return nil
}

// TeamInPossession returns the team with the ball
func (g *Game) TeamInPossession() *models.Team {
	return g.team(g.Context.Possession.PossessionAway)
}

// TeamDefending returns the team without the ball
func (g *Game) TeamDefending() *models.Team {
	return g.team(!g.Context.Possession.PossessionAway)
}

// Plays returns the number of plays simulated so far
func (g *Game) Plays() int {
	return g.plays
}

// IsOver returns true once the game has reached postgame
func (g *Game) IsOver() bool {
	return g.Context.Clock.IsGameOver()
}

func (g *Game) String() string {
	return fmt.Sprintf("%s %d\n%s %d", g.Home, g.Context.Score.Home, g.Away, g.Context.Score.Away)
}

func (g *Game) team(away bool) *models.Team {
	if away {
		return g.Away
	}
	return g.Home
}

// record appends a snapshot of the current context to the event log
func (g *Game) record(message string) {
	g.Log.Append(gamestate.NewEntry(&g.Context, message))
}

// startSecondHalf sets up the halftime kickoff. The field is oriented as in
// the first quarter, so the opening receiver kicks toward the left.
func (g *Game) startSecondHalf() {
	g.Context.Clock.StartSecondHalf()

	p := &g.Context.Possession
	p.Down = gamestate.DownKickoff
	p.PossessionAway = g.openingReceiverAway
	p.DirectionLeft = true
	p.SetYardLine(gamestate.KickoffYardLine, true)

	metrics.RecordQuarter(g.Context.Clock.Quarter.String())
	log.Info().
		Str("game_id", g.ID.String()).
		Str("kicking", g.TeamInPossession().Abbreviation).
		Msg("Second half starting")
}

// advancePeriod ends the period when its clock has expired. A point after
// attempt is always played before the period ends. In overtime the first
// score ends the game.
func (g *Game) advancePeriod(rng *rand.Rand) {
	clock := &g.Context.Clock

	if clock.Quarter == gamestate.QuarterOvertime && !g.Context.Score.Tied() {
		g.finish()
		return
	}

	if !clock.Expired() || g.Context.Possession.Down == gamestate.DownPointAfter {
		return
	}

	previous := clock.Quarter
	next := clock.AdvanceQuarter(g.Context.Score.Tied())

	switch next {
	case gamestate.QuarterSecond, gamestate.QuarterFourth:
		g.Context.Possession.SwitchEnds()
		g.record(fmt.Sprintf("End of the %s quarter", previous))
	case gamestate.QuarterHalftime:
		g.record("Halftime")
	case gamestate.QuarterOvertime:
		g.record("End of regulation, the game is tied")
		g.tossForKickoff("overtime", rng)
	case gamestate.QuarterPostgame:
		g.finish()
		return
	}

	metrics.RecordQuarter(next.String())
	log.Info().
		Str("game_id", g.ID.String()).
		Str("quarter", next.String()).
		Str("score", g.Context.Score.String()).
		Msg("Period ended")
}

// finish ends the game and records the result
func (g *Game) finish() {
	g.Context.Clock.End()
	g.record("Final")

	result := "tie"
	switch margin := g.Context.Score.Margin(true); {
	case margin > 0:
		result = "home"
	case margin < 0:
		result = "away"
	}

	metrics.RecordGame(result, time.Since(g.startedAt).Seconds())
	log.Info().
		Str("game_id", g.ID.String()).
		Str("home", g.Home.Abbreviation).
		Str("away", g.Away.Abbreviation).
		Int("home_score", g.Context.Score.Home).
		Int("away_score", g.Context.Score.Away).
		Int("plays", g.plays).
		Msg("Game over")
}
