package main

import "fmt"

// DifficultyStats accumulates per-difficulty results for the running
// session. Unlike badges these reset when the session does.
type DifficultyStats struct {
	Games         int      `json:"games"`
	X             int      `json:"X"`
	O             int      `json:"O"`
	Draw          int      `json:"Draw"`
	CurrentStreak int      `json:"current_streak"`
	BestStreak    int      `json:"best_streak"`
	LongestGame   float64  `json:"longest_game"`
	FastestWin    *float64 `json:"fastest_win"`
}

type SessionStats map[string]*DifficultyStats

func NewSessionStats() SessionStats {
	stats := make(SessionStats, len(Difficulties))
	for _, diff := range Difficulties {
		stats[diff] = &DifficultyStats{}
	}
	return stats
}

func (s SessionStats) entry(difficulty string) *DifficultyStats {
	entry, ok := s[difficulty]
	if !ok {
		entry = &DifficultyStats{}
		s[difficulty] = entry
	}
	return entry
}

// UpdateStats records one finished round. Streaks count consecutive player
// wins; anything else resets the run.
func (s SessionStats) UpdateStats(difficulty string, result GameResult, duration float64) {
	entry := s.entry(difficulty)
	entry.Games++
	switch result {
	case ResultX:
		entry.X++
		entry.CurrentStreak++
		if entry.CurrentStreak > entry.BestStreak {
			entry.BestStreak = entry.CurrentStreak
		}
		if duration > 0 && (entry.FastestWin == nil || duration < *entry.FastestWin) {
			d := duration
			entry.FastestWin = &d
		}
	case ResultO:
		entry.O++
		entry.CurrentStreak = 0
	default:
		entry.Draw++
		entry.CurrentStreak = 0
	}
	if duration > entry.LongestGame {
		entry.LongestGame = duration
	}
}

// ComputeAchievements derives the milestone list from session stats plus the
// recent history window. Purely informational; nothing here persists.
func ComputeAchievements(stats SessionStats, history []HistoryEntry) []string {
	var achievements []string

	totalWins, totalGames, totalDraws, maxStreak := 0, 0, 0, 0
	var fastestWin *float64
	longestGame := 0.0
	for _, diff := range Difficulties {
		entry := stats.entry(diff)
		totalWins += entry.X
		totalGames += entry.Games
		totalDraws += entry.Draw
		if entry.BestStreak > maxStreak {
			maxStreak = entry.BestStreak
		}
		if entry.FastestWin != nil && (fastestWin == nil || *entry.FastestWin < *fastestWin) {
			fastestWin = entry.FastestWin
		}
		if entry.LongestGame > longestGame {
			longestGame = entry.LongestGame
		}
	}
	hardWins := stats.entry("Hard").X
	easyWins := stats.entry("Easy").X
	normalWins := stats.entry("Normal").X
	hardDraws := stats.entry("Hard").Draw
	normalDraws := stats.entry("Normal").Draw
	easyDraws := stats.entry("Easy").Draw

	lastFive := tailHistory(history, 5)
	recentHardWins := countRecent(lastFive, "Hard", "X")
	recentNormalWins := countRecent(lastFive, "Normal", "X")
	recentEasyWins := countRecent(lastFive, "Easy", "X")
	recentDraws := countRecent(lastFive, "", "Draw")

	streak := 0
	bestStreakRecent := 0
	for _, entry := range tailHistory(history, 10) {
		if entry.Result == "X" {
			streak++
			if streak > bestStreakRecent {
				bestStreakRecent = streak
			}
		} else {
			streak = 0
		}
	}

	type milestone struct {
		ok   bool
		text string
	}
	checks := []milestone{
		{totalWins >= 1, "First win!"},
		{totalWins >= 5, "Win 5 games overall."},
		{totalWins >= 10, "Win 10 games overall."},
		{totalWins >= 25, "Win 25 games overall."},
		{totalWins >= 50, "Win 50 games overall."},
		{totalWins >= 100, "Win 100 games overall."},
		{totalGames >= 10, "Play 10 games overall."},
		{totalGames >= 50, "Play 50 games overall."},
		{totalGames >= 100, "Play 100 games overall."},
		{totalDraws >= 5, "Five draws overall."},
		{totalDraws >= 15, "Draw connoisseur: 15 draws overall."},
		{maxStreak >= 3, fmt.Sprintf("Hot streak: %d wins in a row.", maxStreak)},
		{maxStreak >= 5, fmt.Sprintf("On fire: %d wins in a row.", maxStreak)},
		{bestStreakRecent >= 3, fmt.Sprintf("Recent streak: %d in last 10.", bestStreakRecent)},
	}
	for _, check := range checks {
		if check.ok {
			achievements = append(achievements, check.text)
		}
	}

	if fastestWin != nil && *fastestWin <= 15 {
		achievements = append(achievements, fmt.Sprintf("Speedster: win under %.1fs.", *fastestWin))
	}
	if fastestWin != nil && *fastestWin <= 8 {
		achievements = append(achievements, fmt.Sprintf("Blazing fast: win under %.1fs.", *fastestWin))
	}
	if longestGame >= 60 {
		achievements = append(achievements, fmt.Sprintf("Marathoner: played a game lasting %.1fs.", longestGame))
	}

	difficultyChecks := []milestone{
		{easyWins >= 3, "Easy mode warmup: 3 wins."},
		{easyWins >= 10, "Easy mode veteran: 10 wins."},
		{normalWins >= 3, "Normal contender: 3 wins."},
		{normalWins >= 10, "Normal champ: 10 wins."},
		{hardWins >= 1, "Cracked Hard mode once."},
		{hardWins >= 3, "Hard mode regular (3+ wins)."},
		{hardWins >= 5, "Hard mode seasoned (5 wins)."},
		{hardDraws >= 3, "Stalemate with Hard: 3 draws."},
		{normalDraws >= 5, "Middle ground: 5 draws on Normal."},
		{easyDraws >= 3, "Even on Easy: 3 draws."},
		{recentHardWins >= 1, "Recent Hard win in last 5 games."},
		{recentNormalWins >= 2, "Two Normal wins in last 5."},
		{recentEasyWins >= 3, "Easy sweep: 3 wins in last 5 on Easy."},
		{recentDraws >= 2, "Recent draw-heavy run."},
	}
	for _, check := range difficultyChecks {
		if check.ok {
			achievements = append(achievements, check.text)
		}
	}

	if hardWins >= 1 && normalWins >= 1 && easyWins >= 1 {
		achievements = append(achievements, "All-rounder: wins on Easy, Normal, Hard.")
	}
	if hardWins >= 2 && maxStreak >= 2 {
		achievements = append(achievements, "Hard streaker: 2+ Hard wins with streak 2+.")
	}
	if fastestWin != nil && maxStreak >= 3 {
		achievements = append(achievements, "Fast and consistent: streak 3+ with a fast win.")
	}

	if len(achievements) == 0 {
		return []string{"None yet. Keep playing!"}
	}
	return achievements
}

func tailHistory(history []HistoryEntry, n int) []HistoryEntry {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// countRecent matches on result, and on difficulty prefix when given:
// history labels carry the personality suffix ("Normal (mirror)").
func countRecent(entries []HistoryEntry, difficulty, result string) int {
	count := 0
	for _, entry := range entries {
		if difficulty != "" && !hasDifficulty(entry.Difficulty, difficulty) {
			continue
		}
		if entry.Result == result {
			count++
		}
	}
	return count
}

func hasDifficulty(label, difficulty string) bool {
	return label == difficulty || (len(label) > len(difficulty) && label[:len(difficulty)+1] == difficulty+" ")
}
