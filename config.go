package main

import (
	"os"
	"path/filepath"
	"sync"
)

type Config struct {
	DataDir             string  `json:"data_dir"`
	ScoreboardFile      string  `json:"scoreboard_file"`
	MatchScoreboardFile string  `json:"match_scoreboard_file"`
	HistoryFile         string  `json:"history_file"`
	BadgesFile          string  `json:"badges_file"`
	SafeMode            bool    `json:"safe_mode"`
	HistoryLimit        int     `json:"history_limit"`
	RotateHistory       bool    `json:"rotate_history"`
	MinimaxCacheLimit   int     `json:"minimax_cache_limit"`
	HumanishErrorRate   float64 `json:"humanish_error_rate"`
	DefaultMatchLength  int     `json:"default_match_length"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	dataDir := "data"
	return Config{
		DataDir:             dataDir,
		ScoreboardFile:      filepath.Join(dataDir, "scoreboard", "scoreboard.json"),
		MatchScoreboardFile: filepath.Join(dataDir, "scoreboard", "match_scoreboard.json"),
		HistoryFile:         filepath.Join(dataDir, "history", "session_history.log"),
		BadgesFile:          filepath.Join(dataDir, "scoreboard", "badges.json"),
		SafeMode:            envSafeMode(),
		HistoryLimit:        100,
		RotateHistory:       false,
		MinimaxCacheLimit:   minimaxCacheLimit,
		HumanishErrorRate:   0,
		DefaultMatchLength:  3,
	}
}

// Safe mode skips every persistence path; used by tests and sandboxed runs.
func envSafeMode() bool {
	switch os.Getenv("TICTACTOE_SAFE_MODE") {
	case "", "0", "false", "False":
		return false
	}
	return true
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
