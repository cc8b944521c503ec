package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const historyTimestampLayout = "2006-01-02 15:04:05"

// HistoryEntry is one completed round in the append-only session log.
type HistoryEntry struct {
	Difficulty      string  `json:"difficulty"`
	Result          string  `json:"result"`
	Timestamp       string  `json:"timestamp"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func (e HistoryEntry) line() string {
	return fmt.Sprintf("%s - %s: %s (%.1fs)", e.Timestamp, e.Difficulty, e.Result, e.DurationSeconds)
}

// AppendHistory writes one line per entry. In rotate mode a fresh
// timestamp-suffixed file is created instead of appending; the final path
// written is returned either way.
func AppendHistory(path string, entries []HistoryEntry, rotate bool) (string, error) {
	if len(entries) == 0 {
		return path, nil
	}
	if rotate {
		stamp := time.Now().Format("20060102_150405")
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		if ext == "" {
			ext = ".log"
		}
		path = fmt.Sprintf("%s_%s%s", base, stamp, ext)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[history] unable to create history directory %s: %v", dir, err)
		return path, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[history] could not save session history (%v)", err)
		return path, err
	}
	defer file.Close()
	for _, entry := range entries {
		if _, err := fmt.Fprintln(file, entry.line()); err != nil {
			log.Printf("[history] could not save session history (%v)", err)
			return path, err
		}
	}
	return path, nil
}

// LoadHistory parses the most recent limit lines. Malformed lines are
// skipped individually; a missing file is an empty history.
func LoadHistory(path string, limit int) []HistoryEntry {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	entries := make([]HistoryEntry, 0, len(lines))
	for _, line := range lines {
		if entry, ok := parseHistoryLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseHistoryLine(line string) (HistoryEntry, bool) {
	text := strings.TrimSpace(line)
	tsPart, rest, found := strings.Cut(text, " - ")
	if !found || !strings.Contains(rest, ":") {
		return HistoryEntry{}, false
	}
	diffPart, resultPart, _ := strings.Cut(rest, ":")
	resultPart = strings.TrimSpace(resultPart)
	duration := 0.0
	if strings.Contains(resultPart, "(") && strings.Contains(resultPart, ")") {
		main, durText, _ := strings.Cut(resultPart, "(")
		resultPart = strings.TrimSpace(main)
		durText = strings.Trim(durText, "()s ")
		if parsed, err := strconv.ParseFloat(durText, 64); err == nil {
			duration = parsed
		}
	}
	return HistoryEntry{
		Difficulty:      strings.TrimSpace(diffPart),
		Result:          resultPart,
		Timestamp:       tsPart,
		DurationSeconds: duration,
	}, true
}

// BadgeRecord is a persisted personal best per difficulty. Both fields only
// ever improve: a higher streak, a strictly faster win.
type BadgeRecord struct {
	BestStreak int      `json:"best_streak"`
	FastestWin *float64 `json:"fastest_win"`
}

type BadgeMap map[string]BadgeRecord

func LoadBadges(path string) BadgeMap {
	data, err := os.ReadFile(path)
	if err != nil {
		return BadgeMap{}
	}
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return BadgeMap{}
	}
	badges := make(BadgeMap, len(raw))
	for diff, entry := range raw {
		record := BadgeRecord{BestStreak: coerceInt(entry["best_streak"], 0)}
		if fw, ok := entry["fastest_win"].(float64); ok {
			record.FastestWin = &fw
		}
		badges[diff] = record
	}
	return badges
}

func SaveBadges(path string, badges BadgeMap) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("[badges] unable to create badges directory: %v", err)
		return err
	}
	data, err := json.Marshal(badges)
	if err != nil {
		log.Printf("[badges] unable to encode badges: %v", err)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("[badges] could not save badges (%v)", err)
		return err
	}
	return nil
}

// UpdateBadges merges a round outcome into the badge map and reports
// whether anything actually improved, so callers persist only on change.
func UpdateBadges(badges BadgeMap, difficulty string, bestStreak int, fastestWin *float64) bool {
	entry, ok := badges[difficulty]
	if !ok {
		entry = BadgeRecord{}
	}
	changed := false
	if bestStreak > entry.BestStreak {
		entry.BestStreak = bestStreak
		changed = true
	}
	if fastestWin != nil && (entry.FastestWin == nil || *fastestWin < *entry.FastestWin) {
		value := *fastestWin
		entry.FastestWin = &value
		changed = true
	}
	if changed || !ok {
		badges[difficulty] = entry
	}
	return changed
}
