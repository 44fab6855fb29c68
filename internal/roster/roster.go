// Package roster loads batter outcome rates and builds teams from them.
package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
)

//go:embed data/league.yaml
var defaultLeagueYAML []byte

// MinPlayers is the smallest roster a team may field.
const MinPlayers = baseball.MinLineup

var (
	// ErrTooFewPlayers is returned when a team has fewer than MinPlayers rows.
	ErrTooFewPlayers = errors.New("roster: too few players")
)

// Entry is one batter row from the dataset.
type Entry struct {
	Name       string  `yaml:"name"`
	Team       string  `yaml:"team"`
	Single     float64 `yaml:"1b"`
	Double     float64 `yaml:"2b"`
	Triple     float64 `yaml:"3b"`
	HomeRun    float64 `yaml:"hr"`
	Walk       float64 `yaml:"bb"`
	Strikeout  float64 `yaml:"k"`
	HitByPitch float64 `yaml:"hbp"`
	OutInPlay  float64 `yaml:"oip"`
}

// Odds converts the row to batter odds.
func (e Entry) Odds() baseball.Odds {
	return baseball.Odds{
		Single:     e.Single,
		Double:     e.Double,
		Triple:     e.Triple,
		HomeRun:    e.HomeRun,
		Walk:       e.Walk,
		Strikeout:  e.Strikeout,
		HitByPitch: e.HitByPitch,
		OutInPlay:  e.OutInPlay,
	}
}

// Provider yields the batters of a team.
type Provider interface {
	// LoadTeam returns the team's rows in dataset order. It fails with
	// ErrTooFewPlayers when fewer than MinPlayers match.
	LoadTeam(name string) ([]Entry, error)

	// Teams lists every team with a full roster, sorted by name.
	Teams() []string
}

// League is a Provider backed by a flat list of rows.
type League struct {
	players []Entry
}

type leagueFile struct {
	Players []Entry `yaml:"players"`
}

// Parse decodes a league file and validates every row.
func Parse(data []byte) (*League, error) {
	var f leagueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("roster: cannot parse league: %w", err)
	}
	for _, p := range f.Players {
		if err := p.Odds().Validate(); err != nil {
			return nil, fmt.Errorf("roster: %s (%s): %w", p.Name, p.Team, err)
		}
	}
	return &League{players: f.Players}, nil
}

// Default returns the embedded league.
func Default() (*League, error) {
	return Parse(defaultLeagueYAML)
}

// Load reads a league file, or the embedded league when path is empty.
func Load(path string) (*League, error) {
	if path == "" {
		return Default()
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("roster: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadTeam implements Provider.
func (l *League) LoadTeam(name string) ([]Entry, error) {
	var out []Entry
	for _, p := range l.players {
		if p.Team == name {
			out = append(out, p)
		}
	}
	if len(out) < MinPlayers {
		return nil, fmt.Errorf("%w: %q has %d", ErrTooFewPlayers, name, len(out))
	}
	return out, nil
}

// Teams implements Provider.
func (l *League) Teams() []string {
	counts := make(map[string]int)
	for _, p := range l.players {
		counts[p.Team]++
	}
	var teams []string
	for t, n := range counts {
		if n >= MinPlayers {
			teams = append(teams, t)
		}
	}
	sort.Strings(teams)
	return teams
}

// NormalizeTeam title-cases user input the way team names are stored
// ("red sox" -> "Red Sox").
func NormalizeTeam(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// Build turns rows into batters with ids in row order.
func Build(entries []Entry) ([]*baseball.Batter, error) {
	out := make([]*baseball.Batter, 0, len(entries))
	for i, e := range entries {
		b, err := baseball.NewBatter(baseball.BatterID(i), e.Name, e.Odds())
		if err != nil {
			return nil, fmt.Errorf("roster: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

var _ Provider = (*League)(nil)
