package main

import (
	"errors"
	"fmt"
	"strings"
)

type Cell int

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

const BoardCells = 9

// Board is a value type: ApplyMove returns a new board and never mutates
// the receiver, so callers can hold onto snapshots safely.
type Board struct {
	cells [BoardCells]Cell
}

var ErrInvalidMove = errors.New("invalid move")

// winLines are checked in this fixed order; CheckWinner returns the first
// fully-owned line even on (illegal) boards where several lines match.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

var cornerCells = [4]int{0, 2, 6, 8}
var sideCells = [4]int{1, 3, 5, 7}

const centerCell = 4

func NewBoard() Board {
	return Board{}
}

func (b Board) At(idx int) Cell {
	return b.cells[idx]
}

func (b Board) IsEmpty(idx int) bool {
	return idx >= 0 && idx < BoardCells && b.cells[idx] == CellEmpty
}

func ApplyMove(b Board, idx int, symbol Cell) (Board, error) {
	if idx < 0 || idx >= BoardCells {
		return b, fmt.Errorf("%w: index %d out of range", ErrInvalidMove, idx)
	}
	if symbol != CellX && symbol != CellO {
		return b, fmt.Errorf("%w: no symbol to place", ErrInvalidMove)
	}
	if b.cells[idx] != CellEmpty {
		return b, fmt.Errorf("%w: cell %d occupied", ErrInvalidMove, idx)
	}
	b.cells[idx] = symbol
	return b, nil
}

// set is the engine-internal simulate step; callers own b by value so the
// mutation never escapes.
func (b Board) set(idx int, symbol Cell) Board {
	b.cells[idx] = symbol
	return b
}

func CheckWinner(b Board) (GameResult, bool) {
	for _, line := range winLines {
		first := b.cells[line[0]]
		if first == CellEmpty {
			continue
		}
		if b.cells[line[1]] == first && b.cells[line[2]] == first {
			if first == CellX {
				return ResultX, true
			}
			return ResultO, true
		}
	}
	return ResultDraw, false
}

func IsFull(b Board) bool {
	for _, cell := range b.cells {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}

func (b Board) OpenCells() []int {
	open := make([]int, 0, BoardCells)
	for idx, cell := range b.cells {
		if cell == CellEmpty {
			open = append(open, idx)
		}
	}
	return open
}

func (b Board) CountSymbol(symbol Cell) int {
	count := 0
	for _, cell := range b.cells {
		if cell == symbol {
			count++
		}
	}
	return count
}

// Key serializes the board into the 9-byte form used as the minimax cache
// key: 'X', 'O' or ' ' per cell, index order.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardCells)
	for _, cell := range b.cells {
		sb.WriteByte(cellByte(cell))
	}
	return sb.String()
}

// BoardFromString parses the Key form back into a board. Accepts 'X', 'O',
// ' ', '.' and '_' so API payloads and tests can use visible placeholders.
func BoardFromString(s string) (Board, error) {
	if len(s) != BoardCells {
		return Board{}, fmt.Errorf("board string must be %d cells, got %d", BoardCells, len(s))
	}
	b := Board{}
	for i := 0; i < BoardCells; i++ {
		switch s[i] {
		case 'X', 'x':
			b.cells[i] = CellX
		case 'O', 'o':
			b.cells[i] = CellO
		case ' ', '.', '_':
			b.cells[i] = CellEmpty
		default:
			return Board{}, fmt.Errorf("unknown cell %q at index %d", s[i], i)
		}
	}
	return b, nil
}

func (b Board) String() string {
	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			cells = append(cells, string(cellByte(b.cells[r*3+c])))
		}
		rows = append(rows, strings.Join(cells, "|"))
	}
	return strings.Join(rows, "/")
}

func cellByte(cell Cell) byte {
	switch cell {
	case CellX:
		return 'X'
	case CellO:
		return 'O'
	default:
		return ' '
	}
}

func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return "Empty"
	}
}

func otherSymbol(symbol Cell) Cell {
	if symbol == CellX {
		return CellO
	}
	return CellX
}

func isCorner(idx int) bool {
	return idx == 0 || idx == 2 || idx == 6 || idx == 8
}

type GameResult int

const (
	ResultDraw GameResult = iota
	ResultX
	ResultO
)

func (r GameResult) String() string {
	switch r {
	case ResultX:
		return "X"
	case ResultO:
		return "O"
	default:
		return "Draw"
	}
}

func resultOf(symbol Cell) GameResult {
	if symbol == CellX {
		return ResultX
	}
	return ResultO
}

func ResultFromString(s string) (GameResult, bool) {
	switch s {
	case "X":
		return ResultX, true
	case "O":
		return ResultO, true
	case "Draw":
		return ResultDraw, true
	}
	return ResultDraw, false
}

// FindWinningLine reports the first fully-owned line, for UI highlighting.
func FindWinningLine(b Board) ([3]int, Cell, bool) {
	for _, line := range winLines {
		first := b.cells[line[0]]
		if first == CellEmpty {
			continue
		}
		if b.cells[line[1]] == first && b.cells[line[2]] == first {
			return line, first, true
		}
	}
	return [3]int{}, CellEmpty, false
}
