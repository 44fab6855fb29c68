// Package engine runs a game of baseball as a sequence of prompts and events.
//
// A Session never blocks and never touches a terminal. Each call to Answer
// feeds one line of player input and returns what happened. The console,
// Bubble Tea and SSH front ends, and the headless simulator, all drive the
// same Session.
package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
	"github.com/vovakirdan/tui-ballpark/internal/config"
	"github.com/vovakirdan/tui-ballpark/internal/core"
	"github.com/vovakirdan/tui-ballpark/internal/roster"
)

//go:embed text/welcome.txt
var welcomeText string

//go:embed text/help.txt
var helpText string

var (
	// ErrQuit is returned by Answer once the player confirms quitting.
	ErrQuit = errors.New("engine: quit requested")

	// ErrGameOver is returned by Answer after the final out.
	ErrGameOver = errors.New("engine: game is over")
)

// Phase is the question the Session is waiting on.
type Phase int

const (
	PhaseInnings Phase = iota
	PhaseTeam
	PhaseOrder
	PhaseOpponent
	PhasePitch
	PhaseExtraInnings
	PhaseConfirmQuit
	PhaseOver
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInnings:
		return "innings"
	case PhaseTeam:
		return "team"
	case PhaseOrder:
		return "order"
	case PhaseOpponent:
		return "opponent"
	case PhasePitch:
		return "pitch"
	case PhaseExtraInnings:
		return "extra-innings"
	case PhaseConfirmQuit:
		return "confirm-quit"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Prompt is the current question.
type Prompt struct {
	Phase Phase
	Text  string
}

// GameResult is the record of a finished game.
type GameResult struct {
	ID           string
	Home         string
	Opponent     string
	Runs         int
	OpponentRuns int
	Innings      int
	Seed         int64
	Lines        []baseball.BattingLine
	FinishedAt   time.Time
}

// Won reports whether the home side finished ahead.
func (r GameResult) Won() bool {
	return r.Runs > r.OpponentRuns
}

// ResultRecorder stores finished games.
type ResultRecorder interface {
	RecordGame(result GameResult) error
}

// Options configures a Session.
type Options struct {
	Config config.GameConfig
	Roster roster.Provider

	// Rand drives every game decision: pitches, swings, outs in play and the
	// opponent's half innings.
	Rand baseball.Rand

	// Voice picks commentary phrases. Nil always uses the first phrase.
	Voice baseball.Rand

	// Logger receives debug traces. Nil discards them.
	Logger *log.Logger

	// Recorder, if set, is given the result when the game ends. Failures
	// are logged and do not affect the game.
	Recorder ResultRecorder

	// Seed is stored with the result so a game can be replayed.
	Seed int64
}

// Session is one game from the first setup question to the box score.
// It is not safe for concurrent use; a front end owns one Session per player.
type Session struct {
	id       string
	cfg      config.GameConfig
	table    baseball.RunTable
	roster   roster.Provider
	rng      baseball.Rand
	voice    baseball.Rand
	log      *log.Logger
	recorder ResultRecorder
	seed     int64

	phase  Phase
	resume Phase

	candidates []*baseball.Batter
	lineup     []*baseball.Batter
	field      *baseball.Field
	board      *baseball.Scoreboard
	atBat      *baseball.AtBat

	plateAppearances int
	result           *GameResult

	out []Event
}

// New creates a Session waiting for the number of innings.
func New(opts Options) (*Session, error) {
	if opts.Roster == nil {
		return nil, errors.New("engine: roster provider is required")
	}
	if opts.Rand == nil {
		return nil, errors.New("engine: random source is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		id:       uuid.NewString(),
		cfg:      opts.Config,
		table:    opts.Config.RunTable(),
		roster:   opts.Roster,
		rng:      opts.Rand,
		voice:    opts.Voice,
		recorder: opts.Recorder,
		seed:     opts.Seed,
		phase:    PhaseInnings,
	}
	s.log = logger.With("game", s.id[:8])
	return s, nil
}

// ID returns the game's unique id.
func (s *Session) ID() string { return s.id }

// Phase returns the question being asked.
func (s *Session) Phase() Phase { return s.phase }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.phase == PhaseOver }

// Start returns the welcome screen.
func (s *Session) Start() []Event {
	return []Event{MessageEvent{Text: strings.TrimRight(welcomeText, "\n")}}
}

// Prompt returns the current question.
func (s *Session) Prompt() Prompt {
	return Prompt{Phase: s.phase, Text: s.promptText()}
}

func (s *Session) promptText() string {
	switch s.phase {
	case PhaseInnings:
		return "How many innings do you want to play? "
	case PhaseTeam:
		return "Which MLB team do you want to play as? Type a team name, without the city.\n" +
			"Examples include 'Astros' and 'Red Sox'."
	case PhaseOrder:
		return fmt.Sprintf("Time to pick the batting order. Using the numbers above, enter the order you\n"+
			"would like players to bat as a set of numbers separated by commas. Choose\n"+
			"between %d and %d batters. Example: 1,5,10,7,2",
			s.cfg.Lineup.MinBatters, s.cfg.Lineup.MaxBatters)
	case PhaseOpponent:
		return "One more thing! Enter a name for the opposing team: "
	case PhasePitch:
		return "Incoming pitch... [s]wing or [w]atch: "
	case PhaseExtraInnings:
		return "You're out of innings and it's tied. Do you want to play one more inning? [y] or [n]: "
	case PhaseConfirmQuit:
		return "Are you sure you want to quit the game? [y] or [n]: "
	default:
		return ""
	}
}

// Count returns the balls and strikes on the batter at the plate.
func (s *Session) Count() (balls, strikes int) {
	if s.atBat == nil {
		return 0, 0
	}
	return s.atBat.Balls(), s.atBat.Strikes()
}

// Score returns a copy of the scoreboard. It is zero until the innings
// question has been answered.
func (s *Session) Score() baseball.Scoreboard {
	if s.board == nil {
		return baseball.Scoreboard{}
	}
	return *s.board
}

// Result returns the finished game once the Session is over.
func (s *Session) Result() (GameResult, bool) {
	if s.result == nil {
		return GameResult{}, false
	}
	return *s.result, true
}

// Answer feeds one line of input to the current prompt. At any prompt "h"
// shows help and "q" asks for confirmation; confirming returns ErrQuit and
// leaves the Session untouched.
func (s *Session) Answer(input string) ([]Event, error) {
	if s.phase == PhaseOver {
		return nil, ErrGameOver
	}
	text := strings.TrimSpace(input)
	s.out = nil

	if s.phase == PhaseConfirmQuit {
		if core.ParseAction(text) == core.ActionConfirm {
			s.log.Info("player quit", "inning", s.Score().Inning, "phase", s.resume)
			return nil, ErrQuit
		}
		s.phase = s.resume
		return nil, nil
	}

	switch text {
	case "h":
		return []Event{HelpEvent{Text: strings.TrimRight(helpText, "\n")}}, nil
	case "q":
		s.resume = s.phase
		s.phase = PhaseConfirmQuit
		return nil, nil
	}

	var err error
	switch s.phase {
	case PhaseInnings:
		s.answerInnings(text)
	case PhaseTeam:
		err = s.answerTeam(text)
	case PhaseOrder:
		s.answerOrder(text)
	case PhaseOpponent:
		s.answerOpponent(text)
	case PhasePitch:
		s.answerPitch(text)
	case PhaseExtraInnings:
		s.answerExtraInnings(text)
	}
	events := s.out
	s.out = nil
	return events, err
}

func (s *Session) emit(events ...Event) {
	s.out = append(s.out, events...)
}

func (s *Session) say(tone Tone, format string, args ...any) {
	s.emit(MessageEvent{Text: fmt.Sprintf(format, args...), Tone: tone})
}

func (s *Session) answerInnings(text string) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		s.say(ToneNotice, "That's not a valid number. Let's go with %d.", s.cfg.Innings)
		n = s.cfg.Innings
	}
	s.board = baseball.NewScoreboard(n)
	s.phase = PhaseTeam
}

func (s *Session) answerTeam(text string) error {
	name := roster.NormalizeTeam(text)
	entries, err := s.roster.LoadTeam(name)
	if err != nil {
		s.log.Debug("team not found", "team", name, "err", err)
		name = s.cfg.FallbackTeam
		s.say(ToneNotice, "Oops... Looks like there was a typo. We're going to default you to the %s (sorry!).\n"+
			"Enter 'q' if you want to quit and start over with a new selection.", name)
		entries, err = s.roster.LoadTeam(name)
		if err != nil {
			return fmt.Errorf("engine: fallback team: %w", err)
		}
	}

	batters, err := roster.Build(entries)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	s.candidates = batters
	s.board.Home = name

	names := make([]string, len(batters))
	for i, b := range batters {
		names[i] = b.Name()
	}
	s.emit(CandidatesEvent{Names: names})
	s.phase = PhaseOrder
	return nil
}

func (s *Session) answerOrder(text string) {
	order, err := baseball.ParseBattingOrder(text, len(s.candidates), s.cfg.Lineup.MinBatters, s.cfg.Lineup.MaxBatters)
	if err != nil {
		order = baseball.DefaultOrder(len(s.candidates), s.cfg.Lineup.MaxBatters)
		s.say(ToneNotice, "%s We're going to default to the first %d players...", s.orderNotice(err), len(order))
	}

	s.lineup = make([]*baseball.Batter, len(order))
	names := make([]string, len(order))
	for i, idx := range order {
		s.lineup[i] = s.candidates[idx]
		names[i] = s.lineup[i].Name()
	}
	s.field = baseball.NewField(s.lineup, baseball.NewPitcher(s.cfg.Pitcher, s.rng))
	s.emit(LineupEvent{Names: names})
	s.phase = PhaseOpponent
}

func (s *Session) orderNotice(err error) string {
	switch {
	case errors.Is(err, baseball.ErrTooFewBatters):
		return fmt.Sprintf("You did not select enough players. You need at least %d.", s.cfg.Lineup.MinBatters)
	case errors.Is(err, baseball.ErrTooManyBatters):
		return fmt.Sprintf("You selected more than %d batters.", s.cfg.Lineup.MaxBatters)
	case errors.Is(err, baseball.ErrDuplicate):
		return "There was a duplicate somewhere."
	case errors.Is(err, baseball.ErrOutOfRange):
		return "You typed a number outside the range of potential batters."
	case errors.Is(err, baseball.ErrNotANumber):
		return "It looks like you typed an invalid character."
	default:
		return "That batting order didn't work."
	}
}

func (s *Session) answerOpponent(text string) {
	if text == "" {
		text = s.cfg.Opponent
	}
	name, renamed := s.board.SetOpponent(text)
	if renamed {
		s.say(ToneNotice, "You can't choose the same name as your team. We'll rename your opponent the %s.", name)
	}

	s.emit(GameStartEvent{
		ID:       s.id,
		Home:     s.board.Home,
		Opponent: name,
		Innings:  s.board.MaxInnings,
	})
	s.log.Info("game started", "home", s.board.Home, "opponent", name, "innings", s.board.MaxInnings)
	s.startInning()
}

func (s *Session) startInning() {
	if s.board.Inning > 1 {
		s.say(ToneBanner, "NEXT INNING.")
	}
	s.board.StartInning()

	runs := s.board.SimulateOpponentHalfInning(s.rng, s.table)
	s.emit(OpponentHalfEvent{Team: s.board.Opponent, Runs: runs, Inning: s.board.Inning})
	s.emit(s.scoreEvent())
	s.log.Debug("opponent half", "inning", s.board.Inning, "runs", runs)

	s.nextBatter()
}

func (s *Session) scoreEvent() ScoreEvent {
	return ScoreEvent{
		Home:         s.board.Home,
		Opponent:     s.board.Opponent,
		Runs:         s.board.Runs,
		OpponentRuns: s.board.OpponentRuns,
	}
}

func (s *Session) fieldEvent() FieldEvent {
	ev := FieldEvent{Inning: s.board.Inning, Outs: s.board.Outs}
	for _, r := range s.field.Runners() {
		switch r.Base {
		case baseball.BaseFirst:
			ev.First = r.Batter.Name()
		case baseball.BaseSecond:
			ev.Second = r.Batter.Name()
		case baseball.BaseThird:
			ev.Third = r.Batter.Name()
		}
	}
	if b := s.field.UpNext(); b != nil {
		ev.UpNext = b.Name()
	}
	return ev
}

func (s *Session) nextBatter() {
	s.emit(s.fieldEvent())
	b := s.field.StepUp()
	s.atBat = baseball.NewAtBat(b, s.rng)
	s.emit(BatterUpEvent{Batter: b.Name()})
	s.emit(CountEvent{})
	s.phase = PhasePitch
}

var (
	ballCalls   = []string{"Good eye! It was a ball.", "Ball! Good job.", "Way to hold - ball!"}
	strikeCalls = []string{"Strike!", "Darn, you watched a perfect strike!", "Right down the middle - strike!"}
	whiffCalls  = []string{"Whiff! That's a strike.", "A swing and a miss. Strike!"}
)

func (s *Session) call(phrases []string) {
	i := 0
	if s.voice != nil {
		i = s.voice.Intn(len(phrases))
	}
	s.say(TonePlay, "%s", phrases[i])
}

func (s *Session) answerPitch(text string) {
	switch core.ParseAction(text) {
	case core.ActionSwing:
		strikes := s.atBat.Strikes()
		s.atBat.Swing()
		if s.atBat.Strikes() > strikes {
			s.call(whiffCalls)
		}
	case core.ActionWatch:
		pitch := s.field.Bullpen()[0].ThrowPitch()
		s.atBat.Watch(pitch)
		if pitch == baseball.Ball {
			s.call(ballCalls)
		} else {
			s.call(strikeCalls)
		}
	default:
		s.say(ToneNotice, "It looks like you didn't pick a valid option. Let's try again!")
	}

	if !s.atBat.Status().Terminal() {
		s.emit(CountEvent{Balls: s.atBat.Balls(), Strikes: s.atBat.Strikes()})
		return
	}
	s.resolve()
}

func (s *Session) resolve() {
	play := baseball.Resolve(s.atBat, s.field, s.board, s.rng)
	s.plateAppearances++
	s.atBat = nil

	ev := PlateAppearanceEvent{
		Batter:  play.Batter.Name(),
		Outcome: play.Status,
		Out:     play.Out,
		Forced:  play.Forced,
		RBIs:    play.RBIs,
		Inning:  s.board.Inning,
		Outs:    s.board.Outs,
	}
	if play.OutRunner != nil {
		ev.OutRunner = play.OutRunner.Name()
	}
	for _, b := range play.Scored {
		ev.Scored = append(ev.Scored, b.Name())
	}
	s.emit(ev)
	s.log.Debug("plate appearance",
		"batter", ev.Batter, "outcome", ev.Outcome, "scored", len(ev.Scored), "outs", ev.Outs)

	if s.board.Outs >= 3 {
		s.endHalfInning()
		return
	}
	s.nextBatter()
}

func (s *Session) endHalfInning() {
	s.say(ToneBanner, "3 OUTS")
	s.field.ClearBases()
	if s.board.NeedsExtraInnings() {
		s.phase = PhaseExtraInnings
		return
	}
	s.advanceInning()
}

func (s *Session) answerExtraInnings(text string) {
	if core.ParseAction(text) == core.ActionConfirm {
		s.board.AddExtraInning()
		s.log.Debug("extra inning", "max", s.board.MaxInnings)
	}
	s.advanceInning()
}

func (s *Session) advanceInning() {
	if s.board.NextInning() {
		s.startInning()
		return
	}
	s.finish()
}

func (s *Session) finish() {
	s.phase = PhaseOver
	s.say(ToneBanner, "GAME OVER.")
	s.emit(FinalScoreEvent{Score: s.scoreEvent()})

	lines := make([]baseball.BattingLine, len(s.lineup))
	for i, b := range s.lineup {
		lines[i] = b.Line()
	}
	s.emit(BoxScoreEvent{Lines: lines})

	s.result = &GameResult{
		ID:           s.id,
		Home:         s.board.Home,
		Opponent:     s.board.Opponent,
		Runs:         s.board.Runs,
		OpponentRuns: s.board.OpponentRuns,
		Innings:      s.board.MaxInnings,
		Seed:         s.seed,
		Lines:        lines,
		FinishedAt:   time.Now(),
	}
	s.log.Info("game over",
		"home", s.result.Home, "runs", s.result.Runs,
		"opponent", s.result.Opponent, "opponent_runs", s.result.OpponentRuns,
		"plate_appearances", s.plateAppearances)

	if s.recorder != nil {
		if err := s.recorder.RecordGame(*s.result); err != nil {
			s.log.Warn("could not record game", "err", err)
		}
	}
}
