package gamestate

import (
	"fmt"
	"math/rand/v2"

	"gridiron/sim/internal/random"
)

// Quarter is a period of a football game, in the order they are played
type Quarter int

const (
	QuarterPregame Quarter = iota
	QuarterFirst
	QuarterSecond
	QuarterHalftime
	QuarterThird
	QuarterFourth
	QuarterOvertime
	QuarterPostgame
)

const (
	// QuarterSeconds is the length of a regulation quarter
	QuarterSeconds = 900
	// OvertimeSeconds is the length of the overtime period
	OvertimeSeconds = 600
	// PlayClockSeconds is the per-play allowance
	PlayClockSeconds = 40

	maxPlaySeconds            = 30
	playDurationConcentration = 5
)

// String returns the short label used in the event log
func (q Quarter) String() string {
	switch q {
	case QuarterPregame:
		return "Pre"
	case QuarterFirst:
		return "1st"
	case QuarterSecond:
		return "2nd"
	case QuarterHalftime:
		return "Half"
	case QuarterThird:
		return "3rd"
	case QuarterFourth:
		return "4th"
	case QuarterOvertime:
		return "OT"
	case QuarterPostgame:
		return "End"
	default:
		return "Unknown"
	}
}

// Clock tracks the quarter and the time remaining in it
type Clock struct {
	Quarter          Quarter
	GameClockSeconds int
	PlayClockSeconds int
}

// NewClock returns a pregame clock
func NewClock() Clock {
	return Clock{
		Quarter:          QuarterPregame,
		GameClockSeconds: QuarterSeconds,
		PlayClockSeconds: PlayClockSeconds,
	}
}

// Start moves a pregame clock into the first quarter and reports whether it
// did. It is a no-op otherwise.
func (c *Clock) Start() bool {
	if c.Quarter != QuarterPregame {
		return false
	}
	c.Quarter = QuarterFirst
	return true
}

// IsGameOver returns true once the clock has reached postgame
func (c *Clock) IsGameOver() bool {
	return c.Quarter == QuarterPostgame
}

// IsRunning returns true while a period is being played
func (c *Clock) IsRunning() bool {
	switch c.Quarter {
	case QuarterFirst, QuarterSecond, QuarterThird, QuarterFourth, QuarterOvertime:
		return true
	default:
		return false
	}
}

// Expired returns true when no time remains in a running period
func (c *Clock) Expired() bool {
	return c.IsRunning() && c.GameClockSeconds == 0
}

// Increment runs the clock for one play and returns the seconds elapsed.
//
// The duration is drawn from a Beta distribution centered on
// expectedSeconds (capped at 30) and scaled back into [0,30] seconds.
// The game clock never goes below zero.
func (c *Clock) Increment(expectedSeconds int, rng *rand.Rand) int {
	if expectedSeconds > maxPlaySeconds {
		expectedSeconds = maxPlaySeconds
	}
	if expectedSeconds < 0 {
		expectedSeconds = 0
	}

	mean := random.ClampMean(float64(expectedSeconds) / maxPlaySeconds)
	elapsed := int(random.BetaRange(mean, playDurationConcentration, 0, maxPlaySeconds, rng))

	if elapsed > c.GameClockSeconds {
		elapsed = c.GameClockSeconds
	}
	c.GameClockSeconds -= elapsed

	return elapsed
}

// AdvanceQuarter moves an expired period to the next one and returns it.
// A tied game goes to overtime after the fourth quarter.
func (c *Clock) AdvanceQuarter(tied bool) Quarter {
	switch c.Quarter {
	case QuarterFirst:
		c.Quarter = QuarterSecond
		c.GameClockSeconds = QuarterSeconds
	case QuarterSecond:
		c.Quarter = QuarterHalftime
		c.GameClockSeconds = QuarterSeconds
	case QuarterThird:
		c.Quarter = QuarterFourth
		c.GameClockSeconds = QuarterSeconds
	case QuarterFourth:
		if tied {
			c.Quarter = QuarterOvertime
			c.GameClockSeconds = OvertimeSeconds
		} else {
			c.End()
		}
	case QuarterOvertime:
		c.End()
	}

	return c.Quarter
}

// StartSecondHalf moves halftime into the third quarter
func (c *Clock) StartSecondHalf() {
	if c.Quarter == QuarterHalftime {
		c.Quarter = QuarterThird
		c.GameClockSeconds = QuarterSeconds
	}
}

// End finishes the game
func (c *Clock) End() {
	c.Quarter = QuarterPostgame
	c.GameClockSeconds = 0
}

// FormatGameClock formats the remaining time as m:ss
func (c Clock) FormatGameClock() string {
	return fmt.Sprintf("%d:%02d", c.GameClockSeconds/60, c.GameClockSeconds%60)
}

func (c Clock) String() string {
	return fmt.Sprintf("%s %s [%d]", c.Quarter, c.FormatGameClock(), c.PlayClockSeconds)
}
