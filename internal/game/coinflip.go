package game

import (
	"math/rand/v2"

	"gridiron/sim/internal/random"
)

// Decision is what the winner of a coin flip elects to do
type Decision int

const (
	DecisionKick Decision = iota
	DecisionReceive
)

func (d Decision) String() string {
	if d == DecisionKick {
		return "kick"
	}
	return "receive"
}

// CoinFlip is the result of a coin toss. The away team calls it.
type CoinFlip struct {
	Heads      bool
	GuessHeads bool
	Decision   Decision
}

// FlipCoin simulates a toss: the away team's call, the flip itself, then
// the winner's decision. All three are fair trials drawn in that order.
func FlipCoin(rng *rand.Rand) CoinFlip {
	flip := CoinFlip{
		GuessHeads: random.Coin(rng),
		Heads:      random.Coin(rng),
	}

	if random.Coin(rng) {
		flip.Decision = DecisionKick
	} else {
		flip.Decision = DecisionReceive
	}

	return flip
}

// AwayTeamWon returns true when the away team called the toss correctly
func (c CoinFlip) AwayTeamWon() bool {
	return c.Heads == c.GuessHeads
}

// KickingTeamAway returns true when the away team kicks off
func (c CoinFlip) KickingTeamAway() bool {
	return c.AwayTeamWon() == (c.Decision == DecisionKick)
}
