package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ballpark/internal/config"
	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/roster"
)

// fixedRand returns the same draw every time. Intn is clamped to n-1.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return min(r.i, n-1) }

type fakeRoster map[string][]roster.Entry

func (f fakeRoster) LoadTeam(name string) ([]roster.Entry, error) {
	entries := f[name]
	if len(entries) < roster.MinPlayers {
		return nil, fmt.Errorf("%w: %q", roster.ErrTooFewPlayers, name)
	}
	return entries, nil
}

func (f fakeRoster) Teams() []string {
	var teams []string
	for t := range f {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}

// squad builds n players named prefix0..prefixN-1 sharing one odds row.
func squad(team, prefix string, n int, row roster.Entry) []roster.Entry {
	out := make([]roster.Entry, n)
	for i := range out {
		e := row
		e.Name = fmt.Sprintf("%s%d", prefix, i)
		e.Team = team
		out[i] = e
	}
	return out
}

var (
	sluggers   = roster.Entry{HomeRun: 1}
	whiffers   = roster.Entry{Strikeout: 1}
	groundouts = roster.Entry{OutInPlay: 1}
)

type memRecorder struct {
	results []GameResult
	err     error
}

func (m *memRecorder) RecordGame(r GameResult) error {
	m.results = append(m.results, r)
	return m.err
}

type alwaysSwing struct{}

func (alwaysSwing) Decide(int, int) core.Action { return core.ActionSwing }

func newSession(t *testing.T, cfg config.GameConfig, r roster.Provider, rng fixedRand, rec ResultRecorder) *Session {
	t.Helper()
	s, err := New(Options{Config: cfg, Roster: r, Rand: rng, Recorder: rec})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func answer(t *testing.T, s *Session, input string) []Event {
	t.Helper()
	events, err := s.Answer(input)
	if err != nil {
		t.Fatalf("Answer(%q) failed: %v", input, err)
	}
	return events
}

// play answers each input in turn and returns every event.
func play(t *testing.T, s *Session, inputs ...string) []Event {
	t.Helper()
	var all []Event
	for _, in := range inputs {
		all = append(all, answer(t, s, in)...)
	}
	return all
}

func repeat(input string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = input
	}
	return out
}

func messages(events []Event, tone Tone) []string {
	var out []string
	for _, ev := range events {
		if m, ok := ev.(MessageEvent); ok && m.Tone == tone {
			out = append(out, m.Text)
		}
	}
	return out
}

func hasMessage(events []Event, tone Tone, substr string) bool {
	for _, m := range messages(events, tone) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, ev := range events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}

func mustQuit(t *testing.T, s *Session) {
	t.Helper()
	if _, err := s.Answer("q"); err != nil {
		t.Fatalf("Answer(q) failed: %v", err)
	}
	if _, err := s.Answer("y"); !errors.Is(err, ErrQuit) {
		t.Fatalf("Answer(y) error = %v, want ErrQuit", err)
	}
}
