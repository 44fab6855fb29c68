package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultPitcher is the only arm in the bullpen.
const DefaultPitcher = "Benny 'The Jet' Rodriguez"

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Innings:      9,
		FallbackTeam: "Orioles",
		Opponent:     "Yankees",
		Pitcher:      DefaultPitcher,
		Difficulty:   DifficultyNormal,
		Lineup: LineupConfig{
			MinBatters: baseball.MinLineup,
			MaxBatters: baseball.MaxLineup,
		},
	}
}
