package main

import "fmt"

// GameSettings selects the opponent for a session. Personality applies to
// Normal only; a positive ErrorRate swaps in the humanized wrapper.
type GameSettings struct {
	Difficulty  string  `json:"difficulty"`
	Personality string  `json:"personality"`
	ErrorRate   float64 `json:"error_rate"`
	MatchLength int     `json:"match_length"`
}

func DefaultGameSettings() GameSettings {
	cfg := GetConfig()
	return GameSettings{
		Difficulty:  "Normal",
		Personality: "balanced",
		ErrorRate:   cfg.HumanishErrorRate,
		MatchLength: cfg.DefaultMatchLength,
	}
}

// Normalize coerces unknown values back to defaults and keeps the match
// length a positive odd number so a best-of target always exists.
func (s GameSettings) Normalize() GameSettings {
	switch s.Difficulty {
	case "Easy", "Normal", "Hard":
	default:
		s.Difficulty = "Normal"
	}
	switch s.Personality {
	case "balanced", "defensive", "aggressive", "misdirection", "mirror":
	default:
		s.Personality = "balanced"
	}
	if s.ErrorRate < 0 {
		s.ErrorRate = 0
	}
	if s.MatchLength < 1 {
		s.MatchLength = GetConfig().DefaultMatchLength
	}
	if s.MatchLength%2 == 0 {
		s.MatchLength++
	}
	return s
}

func (s GameSettings) MatchTarget() int {
	return s.MatchLength/2 + 1
}

// Strategy resolves the settings to a catalog entry. A positive error rate
// on Normal always selects the humanized wrapper, whatever the personality.
func (s GameSettings) Strategy() Strategy {
	switch s.Difficulty {
	case "Easy":
		return StrategyEasy
	case "Hard":
		return StrategyHard
	}
	if s.ErrorRate > 0 {
		return StrategyHumanish
	}
	if strategy, ok := ParseStrategy(s.Personality); ok {
		return strategy
	}
	return StrategyBalanced
}

// DifficultyLabel is the display form used in history lines: personality
// shows only for Normal.
func (s GameSettings) DifficultyLabel() string {
	if s.Difficulty != "Normal" {
		return s.Difficulty
	}
	personality := s.Personality
	if personality == "" {
		personality = "balanced"
	}
	return fmt.Sprintf("%s (%s)", s.Difficulty, personality)
}
