package models

import "fmt"

// ReplacementRating is the rating given to a replacement-level player when a
// unit has nobody at a position
const ReplacementRating = 5

// Player represents a football player. Ratings are on a 0-10 scale.
type Player struct {
	Name     string `yaml:"name"`
	Throwing int    `yaml:"throwing"`
	Catching int    `yaml:"catching"`
	Running  int    `yaml:"running"`
	Blocking int    `yaml:"blocking"`
	Tackling int    `yaml:"tackling"`
	Kicking  int    `yaml:"kicking"`
}

// NewUniformPlayer creates a player with every rating set to rating
func NewUniformPlayer(name string, rating int) *Player {
	return &Player{
		Name:     name,
		Throwing: rating,
		Catching: rating,
		Running:  rating,
		Blocking: rating,
		Tackling: rating,
		Kicking:  rating,
	}
}

// ReplacementPlayer stands in for an empty position
func ReplacementPlayer(position string) *Player {
	return NewUniformPlayer("Replacement "+position, ReplacementRating)
}

// Overall returns the mean of the player's ratings
func (p *Player) Overall() float64 {
	sum := p.Throwing + p.Catching + p.Running + p.Blocking + p.Tackling + p.Kicking
	return float64(sum) / 6
}

// Validate checks every rating is on the 0-10 scale
func (p *Player) Validate() error {
	ratings := map[string]int{
		"throwing": p.Throwing,
		"catching": p.Catching,
		"running":  p.Running,
		"blocking": p.Blocking,
		"tackling": p.Tackling,
		"kicking":  p.Kicking,
	}
	for name, rating := range ratings {
		if rating < 0 || rating > 10 {
			return fmt.Errorf("player %q: %s rating %d out of range 0-10", p.Name, name, rating)
		}
	}
	return nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%.2f Overall)", p.Name, p.Overall())
}
