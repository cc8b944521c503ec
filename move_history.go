package main

// MoveRecord is one placed mark within the current round.
type MoveRecord struct {
	Index     int     `json:"index"`
	Symbol    string  `json:"symbol"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
	Strategy  string  `json:"strategy,omitempty"`
}

type MoveHistory struct {
	entries []MoveRecord
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry MoveRecord) {
	h.entries = append(h.entries, entry)
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []MoveRecord {
	return append([]MoveRecord(nil), h.entries...)
}
