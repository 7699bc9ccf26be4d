// Package roster loads teams from YAML roster files.
package roster

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gridiron/sim/internal/models"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// File is the on-disk roster format
type File struct {
	Teams []models.TeamInput `yaml:"teams"`
}

// Repository holds the teams of a roster file, keyed by abbreviation
type Repository struct {
	teams map[string]*models.Team
}

// Load reads and parses the roster file at path
func Load(path string) (*Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	repo, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster file %s: %w", path, err)
	}

	return repo, nil
}

// Parse builds a repository from YAML roster data. Unknown keys are rejected.
func Parse(raw []byte) (*Repository, error) {
	var file File
	if err := yaml.UnmarshalStrict(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("roster contains no teams")
	}

	repo := &Repository{teams: make(map[string]*models.Team, len(file.Teams))}
	for i := range file.Teams {
		team, err := file.Teams[i].ToTeam()
		if err != nil {
			return nil, fmt.Errorf("failed to build team: %w", err)
		}
		if err := repo.add(team); err != nil {
			return nil, err
		}

		log.Debug().
			Str("abbreviation", team.Abbreviation).
			Str("name", team.Name).
			Int("players", team.NumPlayers()).
			Msg("Team loaded")
	}

	return repo, nil
}

// Default returns two evenly matched teams with uniform ratings
func Default() *Repository {
	repo := &Repository{teams: make(map[string]*models.Team, 2)}
	_ = repo.add(models.NewUniformTeam("Home Team", "HOM", models.ReplacementRating))
	_ = repo.add(models.NewUniformTeam("Away Team", "AWY", models.ReplacementRating))
	return repo
}

func (r *Repository) add(team *models.Team) error {
	if _, exists := r.teams[team.Abbreviation]; exists {
		return fmt.Errorf("duplicate team abbreviation: %s", team.Abbreviation)
	}
	r.teams[team.Abbreviation] = team
	return nil
}

// GetByAbbreviation retrieves a team by its abbreviation (case-insensitive)
func (r *Repository) GetByAbbreviation(abbreviation string) (*models.Team, error) {
	team, ok := r.teams[strings.ToUpper(strings.TrimSpace(abbreviation))]
	if !ok {
		return nil, fmt.Errorf("team not found: abbreviation=%s", abbreviation)
	}
	return team, nil
}

// Matchup retrieves the home and away teams for a game
func (r *Repository) Matchup(home, away string) (*models.Team, *models.Team, error) {
	homeTeam, err := r.GetByAbbreviation(home)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get home team: %w", err)
	}

	awayTeam, err := r.GetByAbbreviation(away)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get away team: %w", err)
	}

	if homeTeam == awayTeam {
		return nil, nil, fmt.Errorf("a team cannot play itself: %s", homeTeam.Abbreviation)
	}

	return homeTeam, awayTeam, nil
}

// List retrieves all teams ordered by name
func (r *Repository) List() []*models.Team {
	teams := make([]*models.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}

	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	return teams
}
