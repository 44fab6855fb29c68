package baseball

// OutKind says who was retired on an out in play.
type OutKind int

const (
	OutNone OutKind = iota
	// OutBatter: batter out at first, nobody moves.
	OutBatter
	// OutBatterRunnersAdvance: batter out at first, runners move up one.
	OutBatterRunnersAdvance
	// OutLeadRunner: lead runner retired, batter and the rest move up one.
	OutLeadRunner
)

// Play describes what happened when a plate appearance was resolved.
type Play struct {
	Status    Status
	Batter    *Batter
	Scored    []*Batter
	RBIs      int
	Out       OutKind
	OutRunner *Batter // set for OutLeadRunner
	Forced    bool    // walk with first base occupied
}

// Resolve applies a finished plate appearance to the field and scoreboard
// and updates the batter's stats.
func Resolve(ab *AtBat, f *Field, sb *Scoreboard, rng Rand) Play {
	b := ab.batter
	p := Play{Status: ab.status, Batter: b}
	before := b.rbis

	switch ab.status {
	case StatusStrikeOut:
		sb.Outs++
		b.atBats++
		f.SendToDugout(b)

	case StatusWalk:
		p.Forced = f.Occupied(BaseFirst)
		p.Scored = f.Walk(b, sb)

	case StatusSingle, StatusDouble, StatusTriple, StatusHomeRun:
		b.hits++
		b.atBats++
		p.Scored = f.Advance(ab.status.Bases(), b, false, sb)

	case StatusOutInPlay:
		sb.Outs++
		b.atBats++
		p.Out, p.OutRunner, p.Scored = resolveOutInPlay(b, f, sb, rng)

	default:
		return p
	}

	p.RBIs = b.rbis - before
	return p
}

// resolveOutInPlay picks who is retired. With runners aboard and fewer than
// three outs, the lead runner is out two times in three.
func resolveOutInPlay(b *Batter, f *Field, sb *Scoreboard, rng Rand) (OutKind, *Batter, []*Batter) {
	draw := rng.Intn(3)

	if len(f.runners) < 2 || sb.Outs >= 3 {
		f.SendToDugout(b)
		return OutBatter, nil, nil
	}

	if draw >= 2 {
		scored := f.Advance(1, b, false, sb)
		f.SendToDugout(b)
		return OutBatterRunnersAdvance, nil, scored
	}

	lead, _ := f.LeadRunner(b)
	f.SendToDugout(lead)
	scored := f.Advance(1, b, false, sb)
	return OutLeadRunner, lead, scored
}
