package models

import (
	"fmt"
	"strings"
)

// OffensiveStyle is a coach's run/pass tendency
type OffensiveStyle int

const (
	OffensiveStyleBalanced OffensiveStyle = iota
	OffensiveStyleRun
	OffensiveStylePass
)

// DefensiveStyle is a coach's blitz/coverage tendency
type DefensiveStyle int

const (
	DefensiveStyleBalanced DefensiveStyle = iota
	DefensiveStyleBlitz
	DefensiveStyleCoverage
)

// Coach represents a head coach and the tendencies that drive play calling
type Coach struct {
	Name            string         `yaml:"name"`
	Aggressiveness  int            `yaml:"aggressiveness"`
	ClockManagement int            `yaml:"clock_management"`
	Intelligence    int            `yaml:"intelligence"`
	OffensiveStyle  OffensiveStyle `yaml:"offensive_style"`
	DefensiveStyle  DefensiveStyle `yaml:"defensive_style"`
}

func (s OffensiveStyle) String() string {
	switch s {
	case OffensiveStyleRun:
		return "run"
	case OffensiveStylePass:
		return "pass"
	default:
		return "balanced"
	}
}

// ParseOffensiveStyle parses "run", "balanced" or "pass"
func ParseOffensiveStyle(s string) (OffensiveStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "run":
		return OffensiveStyleRun, nil
	case "", "balanced":
		return OffensiveStyleBalanced, nil
	case "pass":
		return OffensiveStylePass, nil
	default:
		return OffensiveStyleBalanced, fmt.Errorf("unknown offensive style %q", s)
	}
}

// UnmarshalYAML reads the style from its name
func (s *OffensiveStyle) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseOffensiveStyle(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s DefensiveStyle) String() string {
	switch s {
	case DefensiveStyleBlitz:
		return "blitz"
	case DefensiveStyleCoverage:
		return "coverage"
	default:
		return "balanced"
	}
}

// ParseDefensiveStyle parses "blitz", "balanced" or "coverage"
func ParseDefensiveStyle(s string) (DefensiveStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blitz":
		return DefensiveStyleBlitz, nil
	case "", "balanced":
		return DefensiveStyleBalanced, nil
	case "coverage":
		return DefensiveStyleCoverage, nil
	default:
		return DefensiveStyleBalanced, fmt.Errorf("unknown defensive style %q", s)
	}
}

// UnmarshalYAML reads the style from its name
func (s *DefensiveStyle) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseDefensiveStyle(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
