package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
)

// isolate points the user and working directories at empty temp dirs so
// only the embedded default is found.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Innings != 9 {
		t.Errorf("Innings = %d, expected 9", cfg.Innings)
	}
	if cfg.FallbackTeam != "Orioles" {
		t.Errorf("FallbackTeam = %q, expected Orioles", cfg.FallbackTeam)
	}
	if cfg.Pitcher != DefaultPitcher {
		t.Errorf("Pitcher = %q, expected %q", cfg.Pitcher, DefaultPitcher)
	}
	if !slices.Equal(cfg.RunTable(), baseball.DefaultRunTable) {
		t.Errorf("RunTable() = %v, expected the default table", cfg.RunTable())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("innings: 3\nopponent: Cubs\nopponent_odds: [0.5, 1.0]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Innings != 3 || cfg.Opponent != "Cubs" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.FallbackTeam != "Orioles" {
		t.Errorf("unset fields should keep defaults, got FallbackTeam %q", cfg.FallbackTeam)
	}
	if got := cfg.RunTable(); !slices.Equal(got, baseball.RunTable{0.5, 1.0}) {
		t.Errorf("RunTable() = %v", got)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "game.yaml"), []byte("innings: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Innings != 5 {
		t.Errorf("Innings = %d, expected 5", cfg.Innings)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("innings: 3\ndifficulty: easy\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BALLPARK_INNINGS", "7")
	t.Setenv("BALLPARK_DIFFICULTY", "hard")
	t.Setenv("BALLPARK_OPPONENT", "Dodgers")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Innings != 7 {
		t.Errorf("Innings = %d, expected env value 7", cfg.Innings)
	}
	if cfg.Difficulty != DifficultyHard || cfg.Opponent != "Dodgers" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestEnvBadValue(t *testing.T) {
	isolate(t)
	t.Setenv("BALLPARK_INNINGS", "nine")
	if _, err := Load(""); err == nil {
		t.Error("Load() should reject a non-numeric BALLPARK_INNINGS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero innings", func(c *GameConfig) { c.Innings = 0 }},
		{"no fallback", func(c *GameConfig) { c.FallbackTeam = "" }},
		{"inverted lineup", func(c *GameConfig) { c.Lineup.MaxBatters = 2 }},
		{"three batters", func(c *GameConfig) { c.Lineup = LineupConfig{MinBatters: 3, MaxBatters: 3} }},
		{"four batters", func(c *GameConfig) { c.Lineup.MinBatters = 4 }},
		{"ten batters", func(c *GameConfig) { c.Lineup.MaxBatters = 10 }},
		{"unknown difficulty", func(c *GameConfig) { c.Difficulty = "legendary" }},
		{"bad table", func(c *GameConfig) { c.OpponentOdds = []float64{0.9, 0.5} }},
	}

	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if cfg.Validate() == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestPresetTables(t *testing.T) {
	for _, p := range Presets {
		if err := RunTableForPreset(p).Validate(); err != nil {
			t.Errorf("preset %s: %v", p, err)
		}
	}
	if !slices.Equal(RunTableForPreset(DifficultyNormal), baseball.DefaultRunTable) {
		t.Error("normal preset should be the league table")
	}

	// P(no runs) shrinks as difficulty grows.
	easy := RunTableForPreset(DifficultyEasy)[0]
	normal := RunTableForPreset(DifficultyNormal)[0]
	hard := RunTableForPreset(DifficultyHard)[0]
	if !(easy > normal && normal > hard) {
		t.Errorf("shutout odds not ordered: easy=%v normal=%v hard=%v", easy, normal, hard)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.OpponentOdds = []float64{0.1, 1.0}
	ApplyPreset(&cfg, DifficultyEasy)

	if cfg.Difficulty != DifficultyEasy || cfg.OpponentOdds != nil {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.RunTable(), RunTableForPreset(DifficultyEasy)) {
		t.Errorf("RunTable() = %v", cfg.RunTable())
	}
}
