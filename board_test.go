package main

import (
	"errors"
	"testing"
)

func mustBoard(t *testing.T, s string) Board {
	t.Helper()
	b, err := BoardFromString(s)
	if err != nil {
		t.Fatalf("bad board %q: %v", s, err)
	}
	return b
}

func TestApplyMoveRejectsOccupiedAndOutOfRange(t *testing.T) {
	b := mustBoard(t, "X        ")
	if _, err := ApplyMove(b, 0, CellO); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove on occupied cell, got %v", err)
	}
	if _, err := ApplyMove(b, 9, CellO); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove on index 9, got %v", err)
	}
	if _, err := ApplyMove(b, -1, CellO); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove on index -1, got %v", err)
	}
	if _, err := ApplyMove(b, 1, CellEmpty); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove on empty symbol, got %v", err)
	}
}

func TestApplyMoveDoesNotMutateCaller(t *testing.T) {
	b := mustBoard(t, "         ")
	next, err := ApplyMove(b, 4, CellX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.At(4) != CellEmpty {
		t.Fatalf("original board mutated")
	}
	if next.At(4) != CellX {
		t.Fatalf("move not applied to returned board")
	}
}

func TestCheckWinnerAllLines(t *testing.T) {
	cases := []struct {
		board  string
		result GameResult
	}{
		{"XXX      ", ResultX},
		{"   OOO   ", ResultO},
		{"      XXX", ResultX},
		{"O  O  O  ", ResultO},
		{" X  X  X ", ResultX},
		{"  O  O  O", ResultO},
		{"X   X   X", ResultX},
		{"  O O O  ", ResultO},
	}
	for _, tc := range cases {
		result, ok := CheckWinner(mustBoard(t, tc.board))
		if !ok || result != tc.result {
			t.Fatalf("board %q: expected winner %s, got %s ok=%v", tc.board, tc.result, result, ok)
		}
	}
}

func TestCheckWinnerNoWinner(t *testing.T) {
	if _, ok := CheckWinner(mustBoard(t, "XOXOXOOXO")); ok {
		t.Fatalf("full drawn board must have no winner")
	}
	if _, ok := CheckWinner(mustBoard(t, "         ")); ok {
		t.Fatalf("empty board must have no winner")
	}
}

func TestCheckWinnerMultipleLinesReturnsFirstInOrder(t *testing.T) {
	// Illegal position with two X lines; the top row is checked first.
	b := mustBoard(t, "XXXXXX   ")
	result, ok := CheckWinner(b)
	if !ok || result != ResultX {
		t.Fatalf("expected X, got %s ok=%v", result, ok)
	}
	line, symbol, found := FindWinningLine(b)
	if !found || symbol != CellX {
		t.Fatalf("expected winning line for X")
	}
	if line != [3]int{0, 1, 2} {
		t.Fatalf("expected first line (0,1,2), got %v", line)
	}
}

func TestIsFull(t *testing.T) {
	if IsFull(mustBoard(t, "XOXOXOOX ")) {
		t.Fatalf("board with an open cell is not full")
	}
	if !IsFull(mustBoard(t, "XOXOXOOXO")) {
		t.Fatalf("board with nine marks is full")
	}
}

func TestBoardKeyRoundTrip(t *testing.T) {
	b := mustBoard(t, "XO X O  X")
	parsed, err := BoardFromString(b.Key())
	if err != nil {
		t.Fatalf("key did not parse: %v", err)
	}
	if parsed != b {
		t.Fatalf("round trip mismatch: %q vs %q", parsed.Key(), b.Key())
	}
}
