package config

import "github.com/vovakirdan/tui-ballpark/internal/baseball"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known difficulty levels, easiest first.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Valid reports whether the preset is known. Empty means normal.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// RunTableForPreset returns the opponent run distribution for a preset.
// Harder opponents score more often and can put up four in an inning.
func RunTableForPreset(preset DifficultyPreset) baseball.RunTable {
	switch preset {
	case DifficultyEasy:
		return baseball.RunTable{0.80, 0.92, 0.97, 1.0}
	case DifficultyHard:
		return baseball.RunTable{0.62, 0.80, 0.91, 0.97, 1.0}
	default:
		return baseball.DefaultRunTable
	}
}
