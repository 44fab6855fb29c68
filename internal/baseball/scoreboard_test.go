package baseball

import "testing"

func TestRunTableBuckets(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{0.7315, 0},
		{0.7316, 1},
		{0.80, 1},
		{0.8782, 1},
		{0.9, 2},
		{0.9455, 2},
		{0.99, 3},
		{1.0, 3},
	}

	for _, tc := range tests {
		if got := DefaultRunTable.Runs(tc.x); got != tc.want {
			t.Errorf("Runs(%v) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestRunTableValidate(t *testing.T) {
	if err := DefaultRunTable.Validate(); err != nil {
		t.Errorf("default table invalid: %v", err)
	}
	bad := []RunTable{
		{},
		{0.5, 0.4, 1.0},
		{0.5, 0.9},
	}
	for _, tbl := range bad {
		if tbl.Validate() == nil {
			t.Errorf("Validate(%v) should fail", tbl)
		}
	}
}

func TestSimulateOpponentHalfInning(t *testing.T) {
	sb := NewScoreboard(9)
	rng := &scriptedRand{floats: []float64{0.80, 0.95}}

	if runs := sb.SimulateOpponentHalfInning(rng, DefaultRunTable); runs != 1 {
		t.Errorf("x=0.80 scored %d, want 1", runs)
	}
	if runs := sb.SimulateOpponentHalfInning(rng, DefaultRunTable); runs != 3 {
		t.Errorf("x=0.95 scored %d, want 3", runs)
	}
	if sb.OpponentRuns != 4 {
		t.Errorf("opponent runs = %d, want 4", sb.OpponentRuns)
	}
}

func TestSetOpponent(t *testing.T) {
	sb := NewScoreboard(9)
	sb.Home = "Orioles"

	if name, renamed := sb.SetOpponent("Yankees"); name != "Yankees" || renamed {
		t.Errorf("SetOpponent(Yankees) = %q, %v", name, renamed)
	}
	if name, renamed := sb.SetOpponent("Orioles"); name != "Anti-Orioles" || !renamed {
		t.Errorf("SetOpponent(Orioles) = %q, %v", name, renamed)
	}
}

func TestExtraInnings(t *testing.T) {
	sb := NewScoreboard(2)
	sb.Runs, sb.OpponentRuns = 3, 3

	if sb.NeedsExtraInnings() {
		t.Error("tie in the first of two innings should not need extras")
	}
	if !sb.NextInning() {
		t.Fatal("inning 2 of 2 should still be in the game")
	}
	if !sb.NeedsExtraInnings() {
		t.Error("tie after the last inning should need extras")
	}
	sb.AddExtraInning()
	if !sb.NextInning() {
		t.Error("extra inning should be playable")
	}
	if sb.NextInning() {
		t.Error("game should be over after the extra inning")
	}
}
