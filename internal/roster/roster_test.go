package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
)

func TestDefaultLeague(t *testing.T) {
	league, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	teams := league.Teams()
	if len(teams) == 0 {
		t.Fatal("embedded league has no full teams")
	}
	for _, team := range teams {
		entries, err := league.LoadTeam(team)
		if err != nil {
			t.Errorf("LoadTeam(%q) failed: %v", team, err)
			continue
		}
		for _, e := range entries {
			if e.Odds().SwingTotal() <= 0 {
				t.Errorf("%s has no swing mass", e.Name)
			}
		}
	}
}

func TestFallbackTeamIsPresent(t *testing.T) {
	league, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	entries, err := league.LoadTeam("Orioles")
	if err != nil {
		t.Fatalf("LoadTeam(Orioles) failed: %v", err)
	}
	if entries[0].Name != "Trey Mancini" {
		t.Errorf("first Oriole = %q, want dataset order", entries[0].Name)
	}
}

func TestLoadTeamTooFew(t *testing.T) {
	league, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, name := range []string{"Mariners", "Expos", "orioles"} {
		if _, err := league.LoadTeam(name); !errors.Is(err, ErrTooFewPlayers) {
			t.Errorf("LoadTeam(%q) error = %v, want ErrTooFewPlayers", name, err)
		}
	}
	for _, team := range league.Teams() {
		if team == "Mariners" {
			t.Error("Teams() should skip short rosters")
		}
	}
}

func TestParseRejectsBadOdds(t *testing.T) {
	data := []byte(`
players:
  - name: "Walk Only"
    team: Test
    bb: 1.0
`)
	_, err := Parse(data)
	if !errors.Is(err, baseball.ErrNoSwingMass) {
		t.Errorf("Parse() error = %v, want ErrNoSwingMass", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	data := []byte(`
players:
  - {name: A, team: Test, 1b: 0.2, oip: 0.5, k: 0.3}
  - {name: B, team: Test, 1b: 0.2, oip: 0.5, k: 0.3}
  - {name: C, team: Test, 1b: 0.2, oip: 0.5, k: 0.3}
  - {name: D, team: Test, 1b: 0.2, oip: 0.5, k: 0.3}
  - {name: E, team: Test, hr: 0.2, oip: 0.5, k: 0.3}
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	league, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	entries, err := league.LoadTeam("Test")
	if err != nil {
		t.Fatalf("LoadTeam() failed: %v", err)
	}
	batters, err := Build(entries)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(batters) != 5 || batters[4].Name() != "E" || batters[4].Odds().HomeRun != 0.2 {
		t.Errorf("unexpected batters: %v", batters)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestNormalizeTeam(t *testing.T) {
	tests := map[string]string{
		"red sox":   "Red Sox",
		"ASTROS":    "Astros",
		"  orioles": "Orioles",
	}
	for in, want := range tests {
		if got := NormalizeTeam(in); got != want {
			t.Errorf("NormalizeTeam(%q) = %q, want %q", in, got, want)
		}
	}
}
