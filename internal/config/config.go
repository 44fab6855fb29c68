// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty presets for the simulated opponent.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
)

// GameConfig contains all settings for one game.
type GameConfig struct {
	Innings      int              `yaml:"innings"       env:"BALLPARK_INNINGS"`
	FallbackTeam string           `yaml:"fallback_team"`
	Opponent     string           `yaml:"opponent"      env:"BALLPARK_OPPONENT"`
	Pitcher      string           `yaml:"pitcher"`
	RosterPath   string           `yaml:"roster_path"   env:"BALLPARK_ROSTER"`
	Difficulty   DifficultyPreset `yaml:"difficulty"    env:"BALLPARK_DIFFICULTY"`
	Lineup       LineupConfig     `yaml:"lineup"`

	// OpponentOdds overrides the preset run table when non-empty.
	OpponentOdds []float64 `yaml:"opponent_odds"`
}

// LineupConfig bounds the batting order size.
type LineupConfig struct {
	MinBatters int `yaml:"min_batters"`
	MaxBatters int `yaml:"max_batters"`
}

// RunTable returns the opponent run distribution in effect.
func (c GameConfig) RunTable() baseball.RunTable {
	if len(c.OpponentOdds) > 0 {
		return baseball.RunTable(c.OpponentOdds)
	}
	return RunTableForPreset(c.Difficulty)
}

// Validate reports the first setting that cannot drive a game.
func (c GameConfig) Validate() error {
	if c.Innings < 1 {
		return fmt.Errorf("config: innings must be at least 1, got %d", c.Innings)
	}
	if c.FallbackTeam == "" {
		return errors.New("config: fallback_team is required")
	}
	// Three runners and the batter must still leave someone in the dugout.
	if c.Lineup.MinBatters < baseball.MinLineup || c.Lineup.MaxBatters > baseball.MaxLineup ||
		c.Lineup.MaxBatters < c.Lineup.MinBatters {
		return fmt.Errorf("config: lineup bounds %d..%d must lie within %d..%d",
			c.Lineup.MinBatters, c.Lineup.MaxBatters, baseball.MinLineup, baseball.MaxLineup)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("config: unknown difficulty %q", c.Difficulty)
	}
	if err := c.RunTable().Validate(); err != nil {
		return fmt.Errorf("config: opponent_odds: %w", err)
	}
	return nil
}
