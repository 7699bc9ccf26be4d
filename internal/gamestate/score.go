package gamestate

import "fmt"

// Point values for scoring plays
const (
	PointsTouchdown  = 6
	PointsExtraPoint = 1
)

// Score is the running score of a game
type Score struct {
	Home int
	Away int
}

// Add credits points to one side
func (s *Score) Add(away bool, points int) {
	if away {
		s.Away += points
	} else {
		s.Home += points
	}
}

// Margin returns the lead of the given side; negative when trailing
func (s Score) Margin(home bool) int {
	if home {
		return s.Home - s.Away
	}
	return s.Away - s.Home
}

// Tied returns true when both sides have the same score
func (s Score) Tied() bool {
	return s.Home == s.Away
}

func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Home, s.Away)
}
