package main

import (
	"fmt"
	"math/rand"
	"time"
)

// Strategy is the closed set of AI personalities. Dispatch goes through
// MovePicker.SelectMove so there is no lookup-by-name to fail at runtime.
type Strategy int

const (
	StrategyEasy Strategy = iota
	StrategyBalanced
	StrategyDefensive
	StrategyAggressive
	StrategyMisdirection
	StrategyMirror
	StrategyHumanish
	StrategyHard
)

const defaultErrorRate = 0.15

func (s Strategy) String() string {
	switch s {
	case StrategyEasy:
		return "easy"
	case StrategyBalanced:
		return "balanced"
	case StrategyDefensive:
		return "defensive"
	case StrategyAggressive:
		return "aggressive"
	case StrategyMisdirection:
		return "misdirection"
	case StrategyMirror:
		return "mirror"
	case StrategyHumanish:
		return "humanish"
	case StrategyHard:
		return "hard"
	default:
		return "unknown"
	}
}

func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "easy":
		return StrategyEasy, true
	case "balanced", "normal":
		return StrategyBalanced, true
	case "defensive":
		return StrategyDefensive, true
	case "aggressive":
		return StrategyAggressive, true
	case "misdirection":
		return StrategyMisdirection, true
	case "mirror":
		return StrategyMirror, true
	case "humanish":
		return StrategyHumanish, true
	case "hard":
		return StrategyHard, true
	}
	return StrategyEasy, false
}

// MovePicker selects O's move for a given strategy. The RNG is injected so
// tests can seed it; every "choose among equals" step goes through it.
type MovePicker struct {
	engine    *SearchEngine
	rng       *rand.Rand
	errorRate float64
}

func NewMovePicker(engine *SearchEngine, rng *rand.Rand, errorRate float64) *MovePicker {
	if engine == nil {
		engine = NewSearchEngine()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if errorRate < 0 {
		errorRate = 0
	}
	return &MovePicker{engine: engine, rng: rng, errorRate: errorRate}
}

func (p *MovePicker) Engine() *SearchEngine {
	return p.engine
}

func (p *MovePicker) SelectMove(strategy Strategy, b Board) (int, error) {
	if len(b.OpenCells()) == 0 {
		return -1, fmt.Errorf("%w: no open cells", ErrInvalidMove)
	}
	switch strategy {
	case StrategyEasy:
		return p.easy(b), nil
	case StrategyBalanced:
		return p.balanced(b), nil
	case StrategyDefensive:
		return p.defensive(b), nil
	case StrategyAggressive:
		return p.aggressive(b), nil
	case StrategyMisdirection:
		return p.misdirection(b), nil
	case StrategyMirror:
		return p.mirror(b), nil
	case StrategyHumanish:
		return p.humanish(b), nil
	case StrategyHard:
		return p.engine.BestMoveForAI(b), nil
	}
	return -1, fmt.Errorf("unknown strategy %d", strategy)
}

// Hint always runs the full search regardless of the opponent strategy.
func (p *MovePicker) Hint(b Board) (int, bool) {
	return p.engine.BestHintForPlayer(b)
}

func (p *MovePicker) easy(b Board) int {
	return p.pick(b.OpenCells())
}

// balanced: win, block, center, random corner, random side, random open.
func (p *MovePicker) balanced(b Board) int {
	if idx, ok := FindWinningMove(b, CellO); ok {
		return idx
	}
	if idx, ok := FindWinningMove(b, CellX); ok {
		return idx
	}
	if b.IsEmpty(centerCell) {
		return centerCell
	}
	if corners := openCorners(b); len(corners) > 0 {
		return p.pick(corners)
	}
	if sides := openSides(b); len(sides) > 0 {
		return p.pick(sides)
	}
	return p.pick(b.OpenCells())
}

// defensive: block first, then win, and favor sides to slow the game down.
func (p *MovePicker) defensive(b Board) int {
	if idx, ok := FindWinningMove(b, CellX); ok {
		return idx
	}
	if idx, ok := FindWinningMove(b, CellO); ok {
		return idx
	}
	if b.IsEmpty(centerCell) {
		return centerCell
	}
	if sides := openSides(b); len(sides) > 0 {
		return p.pick(sides)
	}
	if corners := openCorners(b); len(corners) > 0 {
		return p.pick(corners)
	}
	return p.pick(b.OpenCells())
}

// aggressive: chase wins and corners before bothering to block.
func (p *MovePicker) aggressive(b Board) int {
	if idx, ok := FindWinningMove(b, CellO); ok {
		return idx
	}
	if corners := openCorners(b); len(corners) > 0 {
		return p.pick(corners)
	}
	if idx, ok := FindWinningMove(b, CellX); ok {
		return idx
	}
	if b.IsEmpty(centerCell) {
		return centerCell
	}
	if sides := openSides(b); len(sides) > 0 {
		return p.pick(sides)
	}
	return p.pick(b.OpenCells())
}

// misdirection: fork-hunting play. When the player holds both corners of a
// diagonal, fork blocks and quiet moves get deflected to a side to dodge
// the corner-trap setup.
func (p *MovePicker) misdirection(b Board) int {
	if idx, ok := FindWinningMove(b, CellO); ok {
		return idx
	}
	if idx, ok := FindWinningMove(b, CellX); ok {
		return idx
	}
	trap := hasOppositeCorners(b)
	sides := openSides(b)

	if idx, ok := FindForkMove(b, CellO); ok {
		return idx
	}
	if idx, ok := FindForkMove(b, CellX); ok {
		if trap && !containsCell(sides, idx) && len(sides) > 0 {
			return p.pick(sides)
		}
		return idx
	}
	if trap && len(sides) > 0 {
		return p.pick(sides)
	}
	if b.IsEmpty(centerCell) {
		return centerCell
	}
	if corners := openCorners(b); len(corners) > 0 {
		return p.pick(corners)
	}
	if len(sides) > 0 {
		return p.pick(sides)
	}
	return p.pick(b.OpenCells())
}

// mirror: echo the player's opening across the center, then fall back to
// full search once the player has committed two or more marks.
func (p *MovePicker) mirror(b Board) int {
	if idx, ok := FindWinningMove(b, CellO); ok {
		return idx
	}
	if idx, ok := FindWinningMove(b, CellX); ok {
		return idx
	}
	trap := hasOppositeCorners(b)
	sides := openSides(b)

	if idx, ok := FindForkMove(b, CellX); ok {
		if trap && !containsCell(sides, idx) && len(sides) > 0 {
			return p.pick(sides)
		}
		return idx
	}
	if trap && len(sides) > 0 {
		return p.pick(sides)
	}
	if b.CountSymbol(CellX) >= 2 {
		return p.engine.BestMoveForAI(b)
	}

	mirrorTarget := -1
	for idx := 0; idx < BoardCells; idx++ {
		if b.cells[idx] == CellX && b.IsEmpty(BoardCells-1-idx) {
			mirrorTarget = BoardCells - 1 - idx
		}
	}
	if b.CountSymbol(CellX) == 1 && mirrorTarget != -1 {
		return mirrorTarget
	}
	if idx := p.engine.mirrorScoredMove(b, mirrorTarget); idx != -1 {
		return idx
	}
	return 0
}

// humanish: occasionally blunder to a random cell, otherwise balanced.
func (p *MovePicker) humanish(b Board) int {
	rate := p.errorRate
	if rate == 0 {
		rate = defaultErrorRate
	}
	if p.rng.Float64() < rate {
		if open := b.OpenCells(); len(open) > 0 {
			return p.pick(open)
		}
	}
	return p.balanced(b)
}

func (p *MovePicker) pick(candidates []int) int {
	if len(candidates) == 0 {
		return 0
	}
	return candidates[p.rng.Intn(len(candidates))]
}

// hasOppositeCorners reports whether the player holds both ends of either
// diagonal, the setup the deflection heuristic guards against.
func hasOppositeCorners(b Board) bool {
	return (b.cells[0] == CellX && b.cells[8] == CellX) ||
		(b.cells[2] == CellX && b.cells[6] == CellX)
}

func openCorners(b Board) []int {
	open := make([]int, 0, 4)
	for _, idx := range cornerCells {
		if b.cells[idx] == CellEmpty {
			open = append(open, idx)
		}
	}
	return open
}

func openSides(b Board) []int {
	open := make([]int, 0, 4)
	for _, idx := range sideCells {
		if b.cells[idx] == CellEmpty {
			open = append(open, idx)
		}
	}
	return open
}

func containsCell(cells []int, idx int) bool {
	for _, cell := range cells {
		if cell == idx {
			return true
		}
	}
	return false
}
