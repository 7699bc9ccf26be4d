// Package gamestate holds the situational state of a football game: the
// clock, the down and line of scrimmage, the score, and the event log that
// snapshots all three.
package gamestate

// Context aggregates everything needed to reason about the current situation.
// It is owned by a single game.
type Context struct {
	Clock      Clock
	Possession Possession
	Score      Score
}

// NewContext returns the pregame context
func NewContext() Context {
	return Context{
		Clock:      NewClock(),
		Possession: NewPossession(),
	}
}
