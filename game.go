package main

import (
	"log"
	"time"
)

// Game runs one session: a sequence of best-of matches against a configured
// AI opponent, with scoreboard, history, badge and stats bookkeeping on
// every completed round. The human is X and opens every round.
type Game struct {
	settings GameSettings
	state    GameState
	moves    MoveHistory
	picker   *MovePicker

	scoreboard     Scoreboard
	matchScore     Scoreboard
	badges         BadgeMap
	stats          SessionStats
	sessionHistory []HistoryEntry
	notices        []string

	matchWins   ScoreEntry
	matchRounds int
	matchWinner string

	roundStart time.Time
	turnStart  time.Time
}

func NewGame(settings GameSettings, picker *MovePicker) Game {
	g := Game{picker: picker}
	if g.picker == nil {
		g.picker = NewMovePicker(nil, nil, settings.ErrorRate)
	}
	g.scoreboard = NewScoreboard()
	g.matchScore = NewScoreboard()
	g.badges = BadgeMap{}
	g.stats = NewSessionStats()
	g.Reset(settings)
	g.loadPersisted()
	return g
}

// loadPersisted pulls scoreboard, match scoreboard, badges and recent
// history from disk. Safe mode leaves everything at zero.
func (g *Game) loadPersisted() {
	cfg := GetConfig()
	if cfg.SafeMode {
		log.Printf("[game] safe mode enabled; skipping persistence")
		return
	}
	var notices []string
	g.scoreboard, notices = LoadScoreboard(cfg.ScoreboardFile)
	g.notices = append(g.notices, notices...)
	g.matchScore, notices = LoadScoreboard(cfg.MatchScoreboardFile)
	g.notices = append(g.notices, notices...)
	g.badges = LoadBadges(cfg.BadgesFile)
	g.sessionHistory = LoadHistory(cfg.HistoryFile, cfg.HistoryLimit)
	for _, notice := range g.notices {
		log.Printf("[game] %s", notice)
	}
}

// Reset reconfigures the session and clears the match tally. Scoreboard,
// badges and stats survive: they belong to the session, not the match.
func (g *Game) Reset(settings GameSettings) {
	g.settings = settings.Normalize()
	g.picker.errorRate = g.settings.ErrorRate
	g.state.Reset()
	g.moves.Clear()
	g.matchWins = ScoreEntry{}
	g.matchRounds = 0
	g.matchWinner = ""
	g.picker.Engine().Cache().Clear()
}

// StartRound opens a fresh board, keeping all session accumulators.
func (g *Game) StartRound() {
	if g.matchWinner != "" {
		g.matchWins = ScoreEntry{}
		g.matchRounds = 0
		g.matchWinner = ""
	}
	g.state.Reset()
	g.moves.Clear()
	g.state.Status = StatusRunning
	g.roundStart = time.Now()
	g.turnStart = g.roundStart
	log.Printf("[game] new round on %s (best of %d)", g.settings.DifficultyLabel(), g.settings.MatchLength)
}

// TryApplyMove plays the human mark and, if the round continues, the AI
// reply in the same call. Every decision completes synchronously.
func (g *Game) TryApplyMove(idx int) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "round not running"
	}
	if g.state.ToMove != CellX {
		return false, "not player turn"
	}
	board, err := ApplyMove(g.state.Board, idx, CellX)
	if err != nil {
		g.state.LastMessage = "Illegal move: " + err.Error()
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	g.recordMove(board, idx, CellX, false)
	if g.resolveEnd() {
		return true, ""
	}
	g.state.ToMove = CellO
	g.aiTurn()
	return true, ""
}

func (g *Game) aiTurn() {
	strategy := g.settings.Strategy()
	idx, err := g.picker.SelectMove(strategy, g.state.Board)
	if err != nil {
		log.Printf("[ai] no move available: %v", err)
		return
	}
	board, err := ApplyMove(g.state.Board, idx, CellO)
	if err != nil {
		log.Printf("[ai] strategy %s produced illegal move %d: %v", strategy, idx, err)
		return
	}
	g.recordMove(board, idx, CellO, true)
	if g.resolveEnd() {
		return
	}
	g.state.ToMove = CellX
}

func (g *Game) recordMove(board Board, idx int, symbol Cell, isAi bool) {
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	g.state.Board = board
	g.state.LastMove = idx
	g.state.HasLastMove = true
	strategyName := ""
	if isAi {
		strategyName = g.settings.Strategy().String()
	}
	g.moves.Push(MoveRecord{
		Index:     idx,
		Symbol:    symbol.String(),
		ElapsedMs: elapsedMs,
		IsAi:      isAi,
		Strategy:  strategyName,
	})
	g.turnStart = time.Now()
}

// resolveEnd checks for a finished round and runs the bookkeeping once.
func (g *Game) resolveEnd() bool {
	if result, ok := CheckWinner(g.state.Board); ok {
		if line, _, found := FindWinningLine(g.state.Board); found {
			g.state.WinningLine = line[:]
		}
		g.finishRound(result)
		return true
	}
	if IsFull(g.state.Board) {
		g.finishRound(ResultDraw)
		return true
	}
	return false
}

// finishRound reports a completed round to every tracker: scoreboard,
// session history (memory and file), stats, badges, and the match tally.
func (g *Game) finishRound(result GameResult) {
	g.state.Status = statusForResult(result)
	duration := time.Since(g.roundStart).Seconds()
	diffKey := g.settings.Difficulty
	label := g.settings.DifficultyLabel()
	cfg := GetConfig()

	entry, ok := g.scoreboard[diffKey]
	if !ok {
		entry = ScoreEntry{}
	}
	switch result {
	case ResultX:
		entry.X++
	case ResultO:
		entry.O++
	default:
		entry.Draw++
	}
	g.scoreboard[diffKey] = entry

	historyEntry := HistoryEntry{
		Difficulty:      label,
		Result:          result.String(),
		Timestamp:       time.Now().Format(historyTimestampLayout),
		DurationSeconds: duration,
	}
	g.sessionHistory = append(g.sessionHistory, historyEntry)
	g.stats.UpdateStats(diffKey, result, duration)

	diffStats := g.stats.entry(diffKey)
	badgesChanged := UpdateBadges(g.badges, diffKey, diffStats.BestStreak, diffStats.FastestWin)

	switch result {
	case ResultX:
		g.matchWins.X++
	case ResultO:
		g.matchWins.O++
	default:
		g.matchWins.Draw++
	}
	g.matchRounds++
	matchDone := g.matchWins.X >= g.settings.MatchTarget() ||
		g.matchWins.O >= g.settings.MatchTarget() ||
		g.matchRounds >= g.settings.MatchLength
	if matchDone {
		g.matchWinner = matchWinnerLabel(g.matchWins)
		log.Printf("[game] match over on %s: %s", label, g.matchWinner)
	}

	if cfg.SafeMode {
		log.Printf("[game] round over: %s in %.1fs (safe mode, nothing persisted)", result, duration)
		return
	}
	if err := SaveScoreboard(cfg.ScoreboardFile, g.scoreboard); err == nil {
		log.Printf("[score] scoreboard saved after %s round (%s)", label, result)
	}
	if _, err := AppendHistory(cfg.HistoryFile, []HistoryEntry{historyEntry}, false); err == nil {
		log.Printf("[history] appended %s round to %s", result, cfg.HistoryFile)
	}
	if badgesChanged {
		if err := SaveBadges(cfg.BadgesFile, g.badges); err == nil {
			log.Printf("[badges] new personal best on %s", diffKey)
		}
	}
	// Single-round matches are not worth a best-of record.
	if matchDone && g.settings.MatchTarget() > 1 {
		matchEntry := g.matchScore[diffKey]
		switch g.matchWinner {
		case "X":
			matchEntry.X++
		case "O":
			matchEntry.O++
		default:
			matchEntry.Draw++
		}
		g.matchScore[diffKey] = matchEntry
		_ = SaveScoreboard(cfg.MatchScoreboardFile, g.matchScore)
	}
}

func matchWinnerLabel(wins ScoreEntry) string {
	if wins.X > wins.O {
		return "X"
	}
	if wins.O > wins.X {
		return "O"
	}
	return "Draw"
}

// Hint runs the full search for the player regardless of the configured
// opponent strategy.
func (g *Game) Hint() (int, bool) {
	if g.state.Status != StatusRunning || g.state.ToMove != CellX {
		return -1, false
	}
	return g.picker.Hint(g.state.Board)
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) Moves() MoveHistory {
	return g.moves
}

func (g *Game) Scoreboard() Scoreboard {
	return g.scoreboard.Clone()
}

func (g *Game) MatchScoreboard() Scoreboard {
	return g.matchScore.Clone()
}

func (g *Game) Badges() BadgeMap {
	clone := make(BadgeMap, len(g.badges))
	for diff, record := range g.badges {
		clone[diff] = record
	}
	return clone
}

func (g *Game) Stats() SessionStats {
	return g.stats
}

func (g *Game) SessionHistory() []HistoryEntry {
	return append([]HistoryEntry(nil), g.sessionHistory...)
}

func (g *Game) Notices() []string {
	return append([]string(nil), g.notices...)
}

func (g *Game) MatchWins() ScoreEntry {
	return g.matchWins
}

func (g *Game) MatchWinner() string {
	return g.matchWinner
}

// ResetScoreboard zeroes the persisted scores on explicit user request.
func (g *Game) ResetScoreboard() {
	g.scoreboard = NewScoreboard()
	cfg := GetConfig()
	if cfg.SafeMode {
		return
	}
	if err := SaveScoreboard(cfg.ScoreboardFile, g.scoreboard); err == nil {
		log.Printf("[score] scoreboard reset")
	}
}

// SaveSessionSnapshot writes the whole in-memory session history to a
// rotated file, the shutdown-time counterpart of per-round appends.
func (g *Game) SaveSessionSnapshot() {
	cfg := GetConfig()
	if cfg.SafeMode || !cfg.RotateHistory || len(g.sessionHistory) == 0 {
		return
	}
	if path, err := AppendHistory(cfg.HistoryFile, g.sessionHistory, true); err == nil {
		log.Printf("[history] session history saved to %s", path)
	}
}
