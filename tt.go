package main

const minimaxCacheLimit = 2048

type cacheKey struct {
	board  string
	aiTurn bool
}

// MinimaxCache memoizes minimax scores keyed by serialized board plus side
// to move. It is owned by a SearchEngine instance; cache contents only ever
// affect speed, never the returned score.
//
// Eviction is deliberately crude: when the table reaches capacity it is
// cleared entirely before the next insert. The reachable position space is
// tiny, so a rebuilt table refills within a single search.
type MinimaxCache struct {
	entries map[cacheKey]int
	limit   int
}

func NewMinimaxCache(limit int) *MinimaxCache {
	if limit <= 0 {
		limit = minimaxCacheLimit
	}
	return &MinimaxCache{
		entries: make(map[cacheKey]int, limit),
		limit:   limit,
	}
}

func (c *MinimaxCache) Get(board string, aiTurn bool) (int, bool) {
	score, ok := c.entries[cacheKey{board: board, aiTurn: aiTurn}]
	return score, ok
}

func (c *MinimaxCache) Put(board string, aiTurn bool, score int) {
	if len(c.entries) >= c.limit {
		c.Clear()
	}
	c.entries[cacheKey{board: board, aiTurn: aiTurn}] = score
}

func (c *MinimaxCache) Clear() {
	c.entries = make(map[cacheKey]int, c.limit)
}

func (c *MinimaxCache) Len() int {
	return len(c.entries)
}

func (c *MinimaxCache) Capacity() int {
	return c.limit
}
