package main

import "math"

// Scoring convention: the AI plays O, the human plays X. An O win at depth d
// scores 10-d (faster wins score higher), an X win scores d-10 (slower
// losses score higher), a full board with no winner scores 0.
const (
	winBaseScore = 10
)

// SearchEngine runs the exhaustive minimax search over the 3x3 board. Each
// engine owns its cache; independent engines never share accidental state.
// Safe for single-goroutine use only.
type SearchEngine struct {
	cache *MinimaxCache
}

func NewSearchEngine() *SearchEngine {
	return &SearchEngine{cache: NewMinimaxCache(GetConfig().MinimaxCacheLimit)}
}

func (e *SearchEngine) Cache() *MinimaxCache {
	return e.cache
}

// Minimax returns the exact game value of b with the given side to move.
// Terminal positions are scored before the cache is consulted, so only
// interior nodes are memoized.
func (e *SearchEngine) Minimax(b Board, aiTurn bool, depth int) int {
	if result, ok := CheckWinner(b); ok {
		if result == ResultO {
			return winBaseScore - depth
		}
		return depth - winBaseScore
	}
	if IsFull(b) {
		return 0
	}

	key := b.Key()
	if score, ok := e.cache.Get(key, aiTurn); ok {
		return score
	}

	mover := CellX
	if aiTurn {
		mover = CellO
	}
	best := math.MinInt
	if !aiTurn {
		best = math.MaxInt
	}
	for idx := 0; idx < BoardCells; idx++ {
		if b.cells[idx] != CellEmpty {
			continue
		}
		score := e.Minimax(b.set(idx, mover), !aiTurn, depth+1)
		if aiTurn {
			if score > best {
				best = score
			}
		} else if score < best {
			best = score
		}
	}
	e.cache.Put(key, aiTurn, best)
	return best
}

// BestMoveForAI returns the optimal move for O. Ties resolve to the lowest
// index because only a strictly greater score replaces the current best.
func (e *SearchEngine) BestMoveForAI(b Board) int {
	bestScore := math.MinInt
	bestIdx := 0
	for idx := 0; idx < BoardCells; idx++ {
		if b.cells[idx] != CellEmpty {
			continue
		}
		score := e.Minimax(b.set(idx, CellO), false, 0)
		if score > bestScore {
			bestScore = score
			bestIdx = idx
		}
	}
	return bestIdx
}

// BestHintForPlayer suggests the move for X that minimizes O's outcome.
// Returns false only when the board has no open cell.
func (e *SearchEngine) BestHintForPlayer(b Board) (int, bool) {
	bestScore := math.MaxInt
	bestIdx := -1
	for idx := 0; idx < BoardCells; idx++ {
		if b.cells[idx] != CellEmpty {
			continue
		}
		score := e.Minimax(b.set(idx, CellX), true, 0)
		if score < bestScore {
			bestScore = score
			bestIdx = idx
		}
	}
	return bestIdx, bestIdx != -1
}

// mirrorScoredMove is BestMoveForAI with a half-point bonus on one target
// cell, used by the mirror personality to break ties toward the reflection.
func (e *SearchEngine) mirrorScoredMove(b Board, bonusIdx int) int {
	bestScore := math.Inf(-1)
	bestIdx := -1
	for idx := 0; idx < BoardCells; idx++ {
		if b.cells[idx] != CellEmpty {
			continue
		}
		score := float64(e.Minimax(b.set(idx, CellO), false, 0))
		if idx == bonusIdx {
			score += 0.5
		}
		if score > bestScore {
			bestScore = score
			bestIdx = idx
		}
	}
	return bestIdx
}
