package engine

import "github.com/vovakirdan/tui-ballpark/internal/baseball"

// Event is something the player should see. Platforms render events in the
// order a Session returns them.
type Event interface {
	event()
}

// Tone tells a renderer how loudly to present a message.
type Tone int

const (
	ToneInfo   Tone = iota // plain narration
	ToneNotice             // an input was rejected and a default applied
	ToneBanner             // inning and game banners
	TonePlay               // pitch-by-pitch commentary
)

// MessageEvent is a line of narration.
type MessageEvent struct {
	Text string
	Tone Tone
}

// HelpEvent carries the help screen.
type HelpEvent struct {
	Text string
}

// CandidatesEvent lists the team's players for the batting order prompt.
// A player's index in Names is the number the player types.
type CandidatesEvent struct {
	Names []string
}

// LineupEvent shows the batting order that will be used.
type LineupEvent struct {
	Names []string
}

// GameStartEvent marks the end of setup.
type GameStartEvent struct {
	ID       string
	Home     string
	Opponent string
	Innings  int
}

// OpponentHalfEvent reports the simulated top of an inning.
type OpponentHalfEvent struct {
	Team   string
	Runs   int
	Inning int
}

// ScoreEvent is the running score.
type ScoreEvent struct {
	Home         string
	Opponent     string
	Runs         int
	OpponentRuns int
}

// FieldEvent is the diamond before a batter steps up. Empty names mean an
// empty base.
type FieldEvent struct {
	Inning int
	Outs   int
	First  string
	Second string
	Third  string
	UpNext string
}

// BatterUpEvent announces the batter at the plate.
type BatterUpEvent struct {
	Batter string
}

// CountEvent is the count before the next pitch.
type CountEvent struct {
	Balls   int
	Strikes int
}

// PlateAppearanceEvent reports a finished plate appearance.
type PlateAppearanceEvent struct {
	Batter    string
	Outcome   baseball.Status
	Out       baseball.OutKind
	OutRunner string
	Forced    bool
	Scored    []string
	RBIs      int
	Inning    int
	Outs      int
}

// FinalScoreEvent is the score when the game ends.
type FinalScoreEvent struct {
	Score ScoreEvent
}

// BoxScoreEvent holds every lineup batter's line in batting order.
type BoxScoreEvent struct {
	Lines []baseball.BattingLine
}

func (MessageEvent) event()         {}
func (HelpEvent) event()            {}
func (CandidatesEvent) event()      {}
func (LineupEvent) event()          {}
func (GameStartEvent) event()       {}
func (OpponentHalfEvent) event()    {}
func (ScoreEvent) event()           {}
func (FieldEvent) event()           {}
func (BatterUpEvent) event()        {}
func (CountEvent) event()           {}
func (PlateAppearanceEvent) event() {}
func (FinalScoreEvent) event()      {}
func (BoxScoreEvent) event()        {}
