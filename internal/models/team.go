package models

import (
	"fmt"
	"strings"
)

// Team represents a football team: its staff and its three units
type Team struct {
	Name         string
	Abbreviation string
	Coach        Coach
	Offense      Offense
	Defense      Defense
	SpecialTeams SpecialTeams
}

// PlayerInput is a roster entry as written in a roster file
type PlayerInput struct {
	Player   `yaml:",inline"`
	Position string `yaml:"position"`
}

// TeamInput is used for creating teams from roster files
type TeamInput struct {
	Name         string        `yaml:"name"`
	Abbreviation string        `yaml:"abbreviation"`
	Coach        Coach         `yaml:"coach"`
	Players      []PlayerInput `yaml:"players"`
}

// ToTeam converts TeamInput (from a roster file) to a Team, sorting every
// player into a unit by position
func (ti *TeamInput) ToTeam() (*Team, error) {
	if strings.TrimSpace(ti.Abbreviation) == "" {
		return nil, fmt.Errorf("team %q: abbreviation is required", ti.Name)
	}

	team := &Team{
		Name:         ti.Name,
		Abbreviation: strings.ToUpper(ti.Abbreviation),
		Coach:        ti.Coach,
	}

	for i := range ti.Players {
		in := ti.Players[i]
		player := in.Player
		if err := player.Validate(); err != nil {
			return nil, fmt.Errorf("team %s: %w", team.Abbreviation, err)
		}
		if err := team.assign(strings.ToUpper(in.Position), &player); err != nil {
			return nil, fmt.Errorf("team %s: %w", team.Abbreviation, err)
		}
	}

	return team, nil
}

// assign places a player in the unit that owns position
func (t *Team) assign(position string, p *Player) error {
	switch position {
	case "QB":
		t.Offense.Quarterbacks = append(t.Offense.Quarterbacks, p)
	case "RB":
		t.Offense.Runningbacks = append(t.Offense.Runningbacks, p)
	case "FB":
		t.Offense.Fullbacks = append(t.Offense.Fullbacks, p)
	case "WR":
		t.Offense.WideReceivers = append(t.Offense.WideReceivers, p)
	case "TE":
		t.Offense.TightEnds = append(t.Offense.TightEnds, p)
	case "OL":
		t.Offense.OffensiveLine = append(t.Offense.OffensiveLine, p)
	case "EDGE":
		t.Defense.EdgeRushers = append(t.Defense.EdgeRushers, p)
	case "DT":
		t.Defense.DefensiveTackles = append(t.Defense.DefensiveTackles, p)
	case "LB":
		t.Defense.Linebackers = append(t.Defense.Linebackers, p)
	case "S":
		t.Defense.Safeties = append(t.Defense.Safeties, p)
	case "CB":
		t.Defense.Cornerbacks = append(t.Defense.Cornerbacks, p)
	case "K":
		t.SpecialTeams.Kickers = append(t.SpecialTeams.Kickers, p)
	case "P":
		t.SpecialTeams.Punters = append(t.SpecialTeams.Punters, p)
	case "KR":
		t.SpecialTeams.Returners = append(t.SpecialTeams.Returners, p)
	case "STB":
		t.SpecialTeams.Linemen = append(t.SpecialTeams.Linemen, p)
	case "STC":
		t.SpecialTeams.Defenders = append(t.SpecialTeams.Defenders, p)
	case "STX":
		t.SpecialTeams.Extras = append(t.SpecialTeams.Extras, p)
	default:
		return fmt.Errorf("player %q: unknown position %q", p.Name, position)
	}
	return nil
}

// NewUniformTeam builds a full roster where every player and the coach share
// one rating. Useful for even matchups and tests.
func NewUniformTeam(name, abbreviation string, rating int) *Team {
	team := &Team{
		Name:         name,
		Abbreviation: abbreviation,
		Coach: Coach{
			Name:            name + " Head Coach",
			Aggressiveness:  rating,
			ClockManagement: rating,
			Intelligence:    rating,
		},
	}

	depth := []struct {
		position string
		count    int
	}{
		{"QB", 1}, {"RB", 1}, {"WR", 3}, {"TE", 1}, {"OL", 5},
		{"EDGE", 2}, {"DT", 2}, {"LB", 3}, {"S", 2}, {"CB", 2},
		{"K", 1}, {"P", 1}, {"KR", 1}, {"STB", 5}, {"STC", 8}, {"STX", 2},
	}
	for _, d := range depth {
		for i := 1; i <= d.count; i++ {
			playerName := fmt.Sprintf("%s %s%d", abbreviation, d.position, i)
			// Positions are fixed above, assign cannot fail
			_ = team.assign(d.position, NewUniformPlayer(playerName, rating))
		}
	}

	return team
}

// NumPlayers returns the size of the roster
func (t *Team) NumPlayers() int {
	return t.Offense.NumPlayers() + t.Defense.NumPlayers() + t.SpecialTeams.NumPlayers()
}

// Overall returns the roster-weighted overall rating across all units
func (t *Team) Overall() float64 {
	n := t.NumPlayers()
	if n == 0 {
		return ReplacementRating
	}

	total := t.Offense.Overall()*float64(t.Offense.NumPlayers()) +
		t.Defense.Overall()*float64(t.Defense.NumPlayers()) +
		t.SpecialTeams.Overall()*float64(t.SpecialTeams.NumPlayers())
	return total / float64(n)
}

func (t *Team) String() string {
	return fmt.Sprintf("%s (%.2f Overall)", t.Name, t.Overall())
}
