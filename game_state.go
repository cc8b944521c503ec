package main

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusXWon
	StatusOWon
	StatusDraw
)

func (s GameStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusXWon:
		return "x_won"
	case StatusOWon:
		return "o_won"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}

// GameState is one round in progress. The human is X and always moves
// first; the board is discarded when the round ends.
type GameState struct {
	Board       Board
	ToMove      Cell
	Status      GameStatus
	HasLastMove bool
	LastMove    int
	LastMessage string
	WinningLine []int
}

func DefaultGameState() GameState {
	state := GameState{}
	state.Reset()
	return state
}

func (s *GameState) Reset() {
	s.Board = NewBoard()
	s.ToMove = CellX
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = -1
	s.LastMessage = ""
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.WinningLine = append([]int(nil), s.WinningLine...)
	return clone
}

func statusForResult(result GameResult) GameStatus {
	switch result {
	case ResultX:
		return StatusXWon
	case ResultO:
		return StatusOWon
	default:
		return StatusDraw
	}
}
