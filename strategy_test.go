package main

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestPicker(t *testing.T, errorRate float64) *MovePicker {
	t.Helper()
	return NewMovePicker(NewSearchEngine(), rand.New(rand.NewSource(1)), errorRate)
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"easy", "balanced", "defensive", "aggressive", "misdirection", "mirror", "humanish", "hard"} {
		s, ok := ParseStrategy(name)
		if !ok || s.String() != name {
			t.Fatalf("round trip failed for %q: got %q ok=%v", name, s.String(), ok)
		}
	}
	if s, ok := ParseStrategy("normal"); !ok || s != StrategyBalanced {
		t.Fatalf("expected normal to alias balanced, got %v ok=%v", s, ok)
	}
	if _, ok := ParseStrategy("galaxy-brain"); ok {
		t.Fatalf("unknown strategy must not parse")
	}
}

func TestSelectMoveFullBoard(t *testing.T) {
	p := newTestPicker(t, 0)
	if _, err := p.SelectMove(StrategyBalanced, mustBoard(t, "XOXOXOOXO")); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove on full board, got %v", err)
	}
}

func TestEasyReturnsOpenCell(t *testing.T) {
	p := newTestPicker(t, 0)
	b := mustBoard(t, "XOXOX    ")
	for i := 0; i < 20; i++ {
		idx, err := p.SelectMove(StrategyEasy, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.IsEmpty(idx) {
			t.Fatalf("easy picked occupied cell %d", idx)
		}
	}
}

func TestBalancedWinBeatsBlock(t *testing.T) {
	p := newTestPicker(t, 0)
	// X threatens at 2, O can win at 5: the win comes first.
	idx, err := p.SelectMove(StrategyBalanced, mustBoard(t, "XX OO    "))
	if err != nil || idx != 5 {
		t.Fatalf("expected 5, got %d err=%v", idx, err)
	}
}

func TestBalancedBlocksThenTakesCenter(t *testing.T) {
	p := newTestPicker(t, 0)
	idx, err := p.SelectMove(StrategyBalanced, mustBoard(t, "XX  O    "))
	if err != nil || idx != 2 {
		t.Fatalf("expected block at 2, got %d err=%v", idx, err)
	}
	idx, err = p.SelectMove(StrategyBalanced, mustBoard(t, "X        "))
	if err != nil || idx != centerCell {
		t.Fatalf("expected center, got %d err=%v", idx, err)
	}
}

func TestDefensiveBlocksBeforeWinning(t *testing.T) {
	p := newTestPicker(t, 0)
	// Same double-threat board: defensive blocks 2 even though 5 wins.
	idx, err := p.SelectMove(StrategyDefensive, mustBoard(t, "XX OO    "))
	if err != nil || idx != 2 {
		t.Fatalf("expected block at 2, got %d err=%v", idx, err)
	}
}

func TestAggressiveWinsFirstThenChasesCorners(t *testing.T) {
	p := newTestPicker(t, 0)
	idx, err := p.SelectMove(StrategyAggressive, mustBoard(t, "XX OO    "))
	if err != nil || idx != 5 {
		t.Fatalf("expected win at 5, got %d err=%v", idx, err)
	}
	// With X threatening at 2, aggressive still grabs a corner before
	// considering the block.
	idx, err = p.SelectMove(StrategyAggressive, mustBoard(t, "XX  O    "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isCorner(idx) {
		t.Fatalf("expected a corner, got %d", idx)
	}
}

func TestMisdirectionBuildsOwnForkBeforeBlockingOne(t *testing.T) {
	p := newTestPicker(t, 0)
	// O on 1 and 6 can fork at 0; no immediate win or block exists.
	idx, err := p.SelectMove(StrategyMisdirection, mustBoard(t, " O   XOX "))
	if err != nil || idx != 0 {
		t.Fatalf("expected own fork at 0, got %d err=%v", idx, err)
	}
}

func TestMisdirectionDeflectsCornerTrapToSide(t *testing.T) {
	p := newTestPicker(t, 0)
	// X holds opposite corners and forks at 2 or 6; the corner block would
	// feed the trap, so the pick lands on a side.
	for i := 0; i < 20; i++ {
		idx, err := p.SelectMove(StrategyMisdirection, mustBoard(t, "X   O   X"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsCell([]int{1, 3, 5, 7}, idx) {
			t.Fatalf("expected a side deflection, got %d", idx)
		}
	}
}

func TestMirrorReflectsOpeningMove(t *testing.T) {
	p := newTestPicker(t, 0)
	idx, err := p.SelectMove(StrategyMirror, mustBoard(t, "X        "))
	if err != nil || idx != 8 {
		t.Fatalf("expected reflection 8, got %d err=%v", idx, err)
	}
	idx, err = p.SelectMove(StrategyMirror, mustBoard(t, "      X  "))
	if err != nil || idx != 2 {
		t.Fatalf("expected reflection 2, got %d err=%v", idx, err)
	}
}

func TestMirrorBlocksPlayerFork(t *testing.T) {
	p := newTestPicker(t, 0)
	// X on 0 and 4 forks at 2 or 6; the lower corner wins the tie.
	idx, err := p.SelectMove(StrategyMirror, mustBoard(t, "X   X   O"))
	if err != nil || idx != 2 {
		t.Fatalf("expected fork block at 2, got %d err=%v", idx, err)
	}
}

func TestMirrorDelegatesToSearchAfterTwoMarks(t *testing.T) {
	p := newTestPicker(t, 0)
	// Two non-forking X marks: mirror plays exactly the full-search move.
	b := mustBoard(t, " X  O  X ")
	want := NewSearchEngine().BestMoveForAI(b)
	idx, err := p.SelectMove(StrategyMirror, b)
	if err != nil || idx != want {
		t.Fatalf("expected search move %d, got %d err=%v", want, idx, err)
	}
}

func TestHumanishAlwaysBlundersAtRateOne(t *testing.T) {
	p := newTestPicker(t, 1.0)
	sawOffCenter := false
	for i := 0; i < 100; i++ {
		idx, err := p.SelectMove(StrategyHumanish, mustBoard(t, "         "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idx < 0 || idx >= BoardCells {
			t.Fatalf("blunder out of range: %d", idx)
		}
		if idx != centerCell {
			sawOffCenter = true
		}
	}
	// Balanced play would take the center every time; the blunder path
	// scatters across the board.
	if !sawOffCenter {
		t.Fatalf("100 blunders never left the center")
	}
}

func TestHumanishClampsNegativeRate(t *testing.T) {
	// Negative rates clamp to 0, which humanish treats as "use the default
	// error rate"; the move must still always be legal.
	p := newTestPicker(t, -1)
	b := mustBoard(t, "XX OO    ")
	for i := 0; i < 50; i++ {
		idx, err := p.SelectMove(StrategyHumanish, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.IsEmpty(idx) {
			t.Fatalf("humanish picked occupied cell %d", idx)
		}
	}
}

func TestHardPlaysSearchMove(t *testing.T) {
	p := newTestPicker(t, 0)
	idx, err := p.SelectMove(StrategyHard, mustBoard(t, "XX  O    "))
	if err != nil || idx != 2 {
		t.Fatalf("expected 2, got %d err=%v", idx, err)
	}
}

func TestHasOppositeCorners(t *testing.T) {
	if !hasOppositeCorners(mustBoard(t, "X   O   X")) {
		t.Fatalf("main diagonal corners not detected")
	}
	if !hasOppositeCorners(mustBoard(t, "  X O X  ")) {
		t.Fatalf("anti-diagonal corners not detected")
	}
	if hasOppositeCorners(mustBoard(t, "X   O X  ")) {
		t.Fatalf("adjacent corners are not a trap")
	}
	if hasOppositeCorners(mustBoard(t, "O   X   O")) {
		t.Fatalf("only the player's corners count")
	}
}
