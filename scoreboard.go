package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Difficulties are the fixed scoreboard slots. Files written by older
// releases with a flat score map migrate into the Normal slot on load.
var Difficulties = [3]string{"Easy", "Normal", "Hard"}

type ScoreEntry struct {
	X    int `json:"X"`
	O    int `json:"O"`
	Draw int `json:"Draw"`
}

type Scoreboard map[string]ScoreEntry

// scoredPayload is the on-disk shape. Previous holds the payload that was
// valid at the moment it was overwritten: a one-level undo chain.
type scoredPayload struct {
	Data     Scoreboard     `json:"data"`
	Hash     string         `json:"hash"`
	Previous *scoredPayload `json:"previous"`
}

func NewScoreboard() Scoreboard {
	sb := make(Scoreboard, len(Difficulties))
	for _, diff := range Difficulties {
		sb[diff] = ScoreEntry{}
	}
	return sb
}

func (sb Scoreboard) Clone() Scoreboard {
	clone := make(Scoreboard, len(sb))
	for diff, entry := range sb {
		clone[diff] = entry
	}
	return clone
}

// computeScoreHash digests the canonical serialization of the score data:
// sorted keys, no whitespace, sha256 hex. The byte layout matches files
// produced by earlier releases, so their hashes still validate.
func computeScoreHash(sb Scoreboard) string {
	diffs := make([]string, 0, len(sb))
	for diff := range sb {
		diffs = append(diffs, diff)
	}
	sort.Strings(diffs)
	var out strings.Builder
	out.WriteByte('{')
	for i, diff := range diffs {
		if i > 0 {
			out.WriteByte(',')
		}
		entry := sb[diff]
		fmt.Fprintf(&out, "%q:{\"Draw\":%d,\"O\":%d,\"X\":%d}", diff, entry.Draw, entry.O, entry.X)
	}
	out.WriteByte('}')
	digest := sha256.Sum256([]byte(out.String()))
	return hex.EncodeToString(digest[:])
}

// coerceInt mirrors the tolerant numeric handling of the legacy files:
// JSON numbers truncate, numeric strings parse, anything else falls back.
func coerceInt(value any, fallback int) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	case int:
		return v
	}
	return fallback
}

func validScoreEntry(value any) ScoreEntry {
	entry := ScoreEntry{}
	raw, ok := value.(map[string]any)
	if !ok {
		return entry
	}
	entry.X = coerceInt(raw["X"], 0)
	entry.O = coerceInt(raw["O"], 0)
	entry.Draw = coerceInt(raw["Draw"], 0)
	return entry
}

func validScoreboard(value any) Scoreboard {
	sb := NewScoreboard()
	raw, ok := value.(map[string]any)
	if !ok {
		return sb
	}
	for _, diff := range Difficulties {
		sb[diff] = validScoreEntry(raw[diff])
	}
	return sb
}

// extractScoredPayload validates a {data, hash} pair: the data is coerced
// into shape first, then the stored hash must match the canonical digest of
// the coerced result.
func extractScoredPayload(value any) (Scoreboard, bool) {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	merged := validScoreboard(raw["data"])
	storedHash, _ := raw["hash"].(string)
	if storedHash == computeScoreHash(merged) {
		return merged, true
	}
	return nil, false
}

func scoreboardBackupPath(path string) string {
	return path + ".bak"
}

// LoadScoreboard never fails: whatever is on disk, some valid scoreboard
// comes back, plus advisory notices when recovery or a reset happened.
func LoadScoreboard(path string) (Scoreboard, []string) {
	var notices []string

	raw, err := readJSONFile(path)
	if err != nil {
		raw, err = readJSONFile(scoreboardBackupPath(path))
		if err != nil {
			return NewScoreboard(), notices
		}
		notices = append(notices, "Scoreboard restored from backup.")
	}

	top, ok := raw.(map[string]any)
	if !ok {
		return NewScoreboard(), notices
	}

	// Legacy flat score maps have no data/hash wrapper; their counts land
	// in the Normal slot.
	if _, hasData := top["data"]; !hasData {
		migrated := NewScoreboard()
		migrated["Normal"] = validScoreEntry(top)
		return migrated, notices
	}

	if sb, ok := extractScoredPayload(top); ok {
		return sb, notices
	}

	if sb, ok := extractScoredPayload(top["previous"]); ok {
		notices = append(notices, "Scoreboard seemed corrupted; restored last valid score.")
		return sb, notices
	}

	notices = append(notices, "Scoreboard appears tampered or corrupted. Resetting to 0s.")
	return NewScoreboard(), notices
}

// SaveScoreboard writes {data, hash, previous} with a temp-file rename.
// The previously valid on-disk payload becomes the new previous (one level,
// deeper history discarded) and the primary file is copied verbatim to the
// backup path first. Errors are advisory: the in-memory scoreboard stays
// authoritative for the running session.
func SaveScoreboard(path string, sb Scoreboard) error {
	payload := scoredPayload{
		Data: sb.Clone(),
		Hash: computeScoreHash(sb),
	}
	if raw, err := readJSONFile(path); err == nil {
		if validated, ok := extractScoredPayload(raw); ok {
			payload.Previous = &scoredPayload{
				Data: validated,
				Hash: computeScoreHash(validated),
			}
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[score] unable to create scoreboard directory %s: %v", dir, err)
		return err
	}
	if current, err := os.ReadFile(path); err == nil {
		backup := scoreboardBackupPath(path)
		if err := os.WriteFile(backup, current, 0o644); err != nil {
			log.Printf("[score] unable to write scoreboard backup %s: %v", backup, err)
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[score] unable to encode scoreboard: %v", err)
		return err
	}
	temp, err := os.CreateTemp(dir, ".scoreboard.*")
	if err != nil {
		log.Printf("[score] could not save scoreboard (%v); latest results may not be persisted", err)
		return err
	}
	tempPath := temp.Name()
	if _, err := temp.Write(data); err != nil {
		temp.Close()
		os.Remove(tempPath)
		log.Printf("[score] could not save scoreboard (%v); latest results may not be persisted", err)
		return err
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		log.Printf("[score] could not save scoreboard (%v); latest results may not be persisted", err)
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		log.Printf("[score] could not save scoreboard (%v); latest results may not be persisted", err)
		return err
	}
	return nil
}

func readJSONFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
