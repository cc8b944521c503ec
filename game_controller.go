package main

import "sync"

// GameController is the concurrency boundary: the HTTP and websocket
// handlers call in from many goroutines, the Game underneath is strictly
// single-threaded (as is its search engine and cache).
type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings, nil)}
}

func NewGameControllerWithPicker(settings GameSettings, picker *MovePicker) *GameController {
	return &GameController{game: NewGame(settings, picker)}
}

func (gc *GameController) ApplyHumanMove(idx int) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TryApplyMove(idx)
}

func (gc *GameController) Hint() (int, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Hint()
}

func (gc *GameController) StartRound() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.StartRound()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) UpdateSettings(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) Moves() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Moves()
}

func (gc *GameController) Scoreboard() Scoreboard {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Scoreboard()
}

func (gc *GameController) MatchScoreboard() Scoreboard {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.MatchScoreboard()
}

func (gc *GameController) Badges() BadgeMap {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Badges()
}

func (gc *GameController) Stats() SessionStats {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Stats()
}

func (gc *GameController) SessionHistory() []HistoryEntry {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.SessionHistory()
}

func (gc *GameController) Achievements() []string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return ComputeAchievements(gc.game.Stats(), gc.game.SessionHistory())
}

func (gc *GameController) Notices() []string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Notices()
}

func (gc *GameController) MatchWins() ScoreEntry {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.MatchWins()
}

func (gc *GameController) MatchWinner() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.MatchWinner()
}

func (gc *GameController) ResetScoreboard() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.ResetScoreboard()
}

func (gc *GameController) CacheLen() int {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.picker.Engine().Cache().Len()
}

func (gc *GameController) CacheCapacity() int {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.picker.Engine().Cache().Capacity()
}

func (gc *GameController) ClearCache() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.picker.Engine().Cache().Clear()
}

func (gc *GameController) SaveSessionSnapshot() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.SaveSessionSnapshot()
}
