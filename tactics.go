package main

// FindWinningMove returns the lowest index where placing symbol completes a
// line. Called with the opponent's symbol it doubles as the block finder.
func FindWinningMove(b Board, symbol Cell) (int, bool) {
	for idx := 0; idx < BoardCells; idx++ {
		if b.cells[idx] != CellEmpty {
			continue
		}
		probe := b.set(idx, symbol)
		if result, ok := CheckWinner(probe); ok && result == resultOf(symbol) {
			return idx, true
		}
	}
	return -1, false
}

// FindForkMove returns a move that leaves symbol with two or more
// simultaneous two-way threats (lines holding two of symbol and one empty).
// Among qualifying cells the pick prefers more threats, then corners, then
// the center, then the lowest index.
func FindForkMove(b Board, symbol Cell) (int, bool) {
	bestIdx := -1
	bestCount := 0
	for idx := 0; idx < BoardCells; idx++ {
		if b.cells[idx] != CellEmpty {
			continue
		}
		probe := b.set(idx, symbol)
		twoWay := 0
		for _, line := range winLines {
			owned := 0
			empty := 0
			for _, cell := range line {
				switch probe.cells[cell] {
				case symbol:
					owned++
				case CellEmpty:
					empty++
				}
			}
			if owned == 2 && empty == 1 {
				twoWay++
			}
		}
		if twoWay < 2 {
			continue
		}
		if bestIdx == -1 || forkPreferred(twoWay, idx, bestCount, bestIdx) {
			bestIdx = idx
			bestCount = twoWay
		}
	}
	return bestIdx, bestIdx != -1
}

// forkPreferred orders fork candidates by (two-way count, corner, center,
// lowest index), mirroring a max over the tuple (count, corner, center, -idx).
func forkPreferred(count, idx, bestCount, bestIdx int) bool {
	if count != bestCount {
		return count > bestCount
	}
	candCorner := isCorner(idx)
	bestCorner := isCorner(bestIdx)
	if candCorner != bestCorner {
		return candCorner
	}
	candCenter := idx == centerCell
	bestCenter := bestIdx == centerCell
	if candCenter != bestCenter {
		return candCenter
	}
	return idx < bestIdx
}
