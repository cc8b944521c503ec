package main

import "testing"

func TestFindWinningMoveFirstIndexWins(t *testing.T) {
	// O can complete the top row at 2.
	idx, ok := FindWinningMove(mustBoard(t, "OO XX    "), CellO)
	if !ok || idx != 2 {
		t.Fatalf("expected winning move 2, got %d ok=%v", idx, ok)
	}
	// Same probe with X finds the block target for O.
	idx, ok = FindWinningMove(mustBoard(t, "XX  O    "), CellX)
	if !ok || idx != 2 {
		t.Fatalf("expected X completion at 2, got %d ok=%v", idx, ok)
	}
}

func TestFindWinningMoveNoneWhenNoSingleMoveWins(t *testing.T) {
	if idx, ok := FindWinningMove(mustBoard(t, "X   O    "), CellO); ok {
		t.Fatalf("no single move should win, got %d", idx)
	}
	if idx, ok := FindWinningMove(mustBoard(t, "         "), CellX); ok {
		t.Fatalf("empty board has no winning move, got %d", idx)
	}
}

func TestFindWinningMoveDoesNotMutate(t *testing.T) {
	b := mustBoard(t, "OO XX    ")
	before := b.Key()
	FindWinningMove(b, CellO)
	if b.Key() != before {
		t.Fatalf("probe leaked into caller board: %q", b.Key())
	}
}

func TestFindForkMoveSingleMarkCannotFork(t *testing.T) {
	if idx, ok := FindForkMove(mustBoard(t, "O        "), CellO); ok {
		t.Fatalf("one mark cannot create two threats, got %d", idx)
	}
}

func TestFindForkMovePrefersLowestQualifyingCorner(t *testing.T) {
	// O on 1 and 6: both corners 0 and 2 create two threats; 0 wins the tie.
	idx, ok := FindForkMove(mustBoard(t, " O    O  "), CellO)
	if !ok || idx != 0 {
		t.Fatalf("expected fork at 0, got %d ok=%v", idx, ok)
	}
}

func TestFindForkMoveDetectsClassicCornerFork(t *testing.T) {
	// X owns opposite corners with O in the center: 2 and 6 both fork, the
	// lower corner is picked.
	idx, ok := FindForkMove(mustBoard(t, "X   O   X"), CellX)
	if !ok || idx != 2 {
		t.Fatalf("expected fork at 2, got %d ok=%v", idx, ok)
	}
}
