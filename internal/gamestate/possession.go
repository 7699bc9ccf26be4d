package gamestate

import "fmt"

// Down drives which play pipeline runs next
type Down int

const (
	DownFirst Down = iota
	DownSecond
	DownThird
	DownFourth
	DownPointAfter
	DownKickoff
)

const (
	// GoalLine is the absolute coordinate of either goal line; 0 is midfield
	GoalLine = 50
	// FirstDownDistance is the yardage needed for a new set of downs
	FirstDownDistance = 10
	// KickoffYardLine is where the kicking team kicks from, on its own side
	KickoffYardLine = 35
)

func (d Down) String() string {
	switch d {
	case DownFirst:
		return "1st"
	case DownSecond:
		return "2nd"
	case DownThird:
		return "3rd"
	case DownFourth:
		return "4th"
	case DownPointAfter:
		return "PAT"
	case DownKickoff:
		return "Kick"
	default:
		return "Unknown"
	}
}

// Next returns the fixed successor of a down
func (d Down) Next() Down {
	switch d {
	case DownFirst:
		return DownSecond
	case DownSecond:
		return DownThird
	case DownThird:
		return DownFourth
	case DownPointAfter:
		return DownKickoff
	default:
		// Fourth down and kickoff both lead to a fresh first down
		return DownFirst
	}
}

// IsLive returns true for the four scrimmage downs
func (d Down) IsLive() bool {
	return d <= DownFourth
}

// Possession is the down and line-of-scrimmage state.
//
// LineOfPossession is a signed coordinate in [-50, 50] with 0 at midfield.
// A team with DirectionLeft set drives toward -50.
type Possession struct {
	Down             Down
	LineOfPossession int
	FirstDownLine    int
	PossessionAway   bool
	DirectionLeft    bool
}

// NewPossession returns the opening kickoff state: home team kicking from
// its own 35, driving right.
func NewPossession() Possession {
	return Possession{
		Down:             DownKickoff,
		LineOfPossession: -(GoalLine - KickoffYardLine),
	}
}

// FlipPossession hands the ball to the other team. The new team drives the
// opposite way.
func (p *Possession) FlipPossession() {
	p.PossessionAway = !p.PossessionAway
	p.DirectionLeft = !p.DirectionLeft
}

// SwitchEnds mirrors the field at a change of ends; possession is unchanged
func (p *Possession) SwitchEnds() {
	p.LineOfPossession = -p.LineOfPossession
	p.FirstDownLine = -p.FirstDownLine
	p.DirectionLeft = !p.DirectionLeft
}

// SetYardLine places the ball on a yard line counted from a goal line
// (0..50), on the offense's own side or the opponent's.
func (p *Possession) SetYardLine(yardLine int, own bool) {
	if yardLine < 0 {
		yardLine = 0
	}
	if yardLine > GoalLine {
		yardLine = GoalLine
	}

	// Own territory is behind the offense, so it lies opposite the
	// direction of travel
	line := GoalLine - yardLine
	if own != p.DirectionLeft {
		line = -line
	}
	p.LineOfPossession = line
}

// ResetFirstDownLine places the marker 10 yards downfield, clamped to the goal line
func (p *Possession) ResetFirstDownLine() {
	p.FirstDownLine = clampLine(p.LineOfPossession + p.forward(FirstDownDistance))
}

// StartDrive gives the offense a fresh set of downs from the current spot
func (p *Possession) StartDrive() {
	p.Down = DownFirst
	p.ResetFirstDownLine()
}

// Increment applies the yards gained on a play and advances the down.
//
// Reaching the goal line scores (PointAfter). Reaching the marker earns a
// first down. Falling short on fourth down turns the ball over on downs.
func (p *Possession) Increment(yards int) {
	p.LineOfPossession = clampLine(p.LineOfPossession + p.forward(yards))

	if p.LineOfPossession == p.goalLine() {
		p.Down = DownPointAfter
		return
	}

	if p.reachedFirstDownLine() {
		p.StartDrive()
		return
	}

	if p.Down == DownFourth {
		p.FlipPossession()
		p.StartDrive()
		return
	}

	p.Down = p.Down.Next()
}

// YardsToFirst returns the distance to the first-down marker
func (p *Possession) YardsToFirst() int {
	return abs(p.FirstDownLine - p.LineOfPossession)
}

// YardsToEndzone returns the distance to the goal line being attacked
func (p *Possession) YardsToEndzone() int {
	return abs(p.goalLine() - p.LineOfPossession)
}

// YardLine returns the yard line as printed on the field (0..50)
func (p *Possession) YardLine() int {
	return GoalLine - abs(p.LineOfPossession)
}

// InOwnTerritory returns true when the ball is on the offense's side of midfield
func (p *Possession) InOwnTerritory() bool {
	if p.DirectionLeft {
		return p.LineOfPossession >= 0
	}
	return p.LineOfPossession <= 0
}

// DownAndDistance formats the down and yards to go, e.g. "3rd & 4"
func (p *Possession) DownAndDistance() string {
	if !p.Down.IsLive() {
		return p.Down.String()
	}
	if p.FirstDownLine == p.goalLine() {
		return fmt.Sprintf("%s & Goal", p.Down)
	}
	return fmt.Sprintf("%s & %d", p.Down, p.YardsToFirst())
}

func (p Possession) String() string {
	territory := "opp"
	if p.InOwnTerritory() {
		territory = "own"
	}
	return fmt.Sprintf("%s at %s %d", p.DownAndDistance(), territory, p.YardLine())
}

func (p *Possession) goalLine() int {
	return p.forward(GoalLine)
}

func (p *Possession) reachedFirstDownLine() bool {
	if p.DirectionLeft {
		return p.LineOfPossession <= p.FirstDownLine
	}
	return p.LineOfPossession >= p.FirstDownLine
}

// forward converts yards along the direction of travel into a coordinate delta
func (p *Possession) forward(yards int) int {
	if p.DirectionLeft {
		return -yards
	}
	return yards
}

func clampLine(line int) int {
	if line > GoalLine {
		return GoalLine
	}
	if line < -GoalLine {
		return -GoalLine
	}
	return line
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
