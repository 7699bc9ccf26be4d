package models

import (
	"math/rand/v2"

	"gridiron/sim/internal/random"
)

// Offense is the offensive unit
type Offense struct {
	Quarterbacks  []*Player
	Runningbacks  []*Player
	Fullbacks     []*Player
	WideReceivers []*Player
	TightEnds     []*Player
	OffensiveLine []*Player
}

// Defense is the defensive unit
type Defense struct {
	EdgeRushers      []*Player
	DefensiveTackles []*Player
	Linebackers      []*Player
	Safeties         []*Player
	Cornerbacks      []*Player
}

// SpecialTeams is the kicking unit. On kickoffs the kicking team covers with
// Defenders and Extras; the receiving team blocks with Linemen.
type SpecialTeams struct {
	Kickers   []*Player
	Punters   []*Player
	Returners []*Player
	Linemen   []*Player
	Defenders []*Player
	Extras    []*Player
}

func (o *Offense) groups() [][]*Player {
	return [][]*Player{o.Quarterbacks, o.Runningbacks, o.Fullbacks, o.WideReceivers, o.TightEnds, o.OffensiveLine}
}

// NumPlayers returns the size of the unit
func (o *Offense) NumPlayers() int { return countPlayers(o.groups()...) }

// Overall returns the mean overall rating of the unit
func (o *Offense) Overall() float64 { return meanOverall(o.groups()...) }

func (d *Defense) groups() [][]*Player {
	return [][]*Player{d.EdgeRushers, d.DefensiveTackles, d.Linebackers, d.Safeties, d.Cornerbacks}
}

// NumPlayers returns the size of the unit
func (d *Defense) NumPlayers() int { return countPlayers(d.groups()...) }

// Overall returns the mean overall rating of the unit
func (d *Defense) Overall() float64 { return meanOverall(d.groups()...) }

func (s *SpecialTeams) groups() [][]*Player {
	return [][]*Player{s.Kickers, s.Punters, s.Returners, s.Linemen, s.Defenders, s.Extras}
}

// NumPlayers returns the size of the unit
func (s *SpecialTeams) NumPlayers() int { return countPlayers(s.groups()...) }

// Overall returns the mean overall rating of the unit
func (s *SpecialTeams) Overall() float64 { return meanOverall(s.groups()...) }

// Kicker returns the starting kicker
func (s *SpecialTeams) Kicker() *Player {
	return starter(s.Kickers, "K")
}

// KickReturner returns the starting kick returner
func (s *SpecialTeams) KickReturner() *Player {
	return starter(s.Returners, "KR")
}

// KickoffBlockersBlocking returns the mean blocking rating of the return unit's blockers
func (s *SpecialTeams) KickoffBlockersBlocking() float64 {
	return meanRating(s.Linemen, func(p *Player) int { return p.Blocking })
}

// KickoffCoverageBlocking returns the mean blocking rating of the coverage unit
func (s *SpecialTeams) KickoffCoverageBlocking() float64 {
	return meanRating(s.Defenders, func(p *Player) int { return p.Blocking })
}

// KickoffCoverage returns every player covering a kickoff
func (s *SpecialTeams) KickoffCoverage() []*Player {
	coverage := make([]*Player, 0, len(s.Defenders)+len(s.Extras))
	coverage = append(coverage, s.Defenders...)
	return append(coverage, s.Extras...)
}

// RandomKickoffDefender draws a coverage player uniformly
func (s *SpecialTeams) RandomKickoffDefender(rng *rand.Rand) *Player {
	coverage := s.KickoffCoverage()
	if len(coverage) == 0 {
		return ReplacementPlayer("ST")
	}
	return coverage[random.Pick(len(coverage), rng)]
}

func starter(players []*Player, position string) *Player {
	if len(players) == 0 {
		return ReplacementPlayer(position)
	}
	return players[0]
}

func countPlayers(groups ...[]*Player) int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n
}

func meanOverall(groups ...[]*Player) float64 {
	n := countPlayers(groups...)
	if n == 0 {
		return ReplacementRating
	}

	sum := 0.0
	for _, g := range groups {
		for _, p := range g {
			sum += p.Overall()
		}
	}
	return sum / float64(n)
}

func meanRating(players []*Player, rating func(*Player) int) float64 {
	if len(players) == 0 {
		return ReplacementRating
	}

	sum := 0
	for _, p := range players {
		sum += rating(p)
	}
	return float64(sum) / float64(len(players))
}
