package main

import "testing"

func TestNormalizeCoercesUnknownValues(t *testing.T) {
	s := GameSettings{Difficulty: "Nightmare", Personality: "chaotic", ErrorRate: -2, MatchLength: 4}.Normalize()
	if s.Difficulty != "Normal" {
		t.Fatalf("difficulty not coerced: %s", s.Difficulty)
	}
	if s.Personality != "balanced" {
		t.Fatalf("personality not coerced: %s", s.Personality)
	}
	if s.ErrorRate != 0 {
		t.Fatalf("error rate not clamped: %v", s.ErrorRate)
	}
	if s.MatchLength != 5 {
		t.Fatalf("even match length must round up to odd, got %d", s.MatchLength)
	}
}

func TestNormalizeRejectsDifficultyNamesAsPersonalities(t *testing.T) {
	s := GameSettings{Difficulty: "Normal", Personality: "hard", MatchLength: 3}.Normalize()
	if s.Personality != "balanced" {
		t.Fatalf("difficulty names are not personalities, got %s", s.Personality)
	}
}

func TestMatchTarget(t *testing.T) {
	for _, tc := range []struct{ length, target int }{{1, 1}, {3, 2}, {5, 3}, {7, 4}} {
		s := GameSettings{Difficulty: "Normal", Personality: "balanced", MatchLength: tc.length}
		if got := s.MatchTarget(); got != tc.target {
			t.Fatalf("best of %d: expected target %d, got %d", tc.length, tc.target, got)
		}
	}
}

func TestStrategyResolution(t *testing.T) {
	if s := (GameSettings{Difficulty: "Easy"}).Strategy(); s != StrategyEasy {
		t.Fatalf("Easy: got %s", s)
	}
	if s := (GameSettings{Difficulty: "Hard", Personality: "mirror"}).Strategy(); s != StrategyHard {
		t.Fatalf("Hard overrides personality: got %s", s)
	}
	if s := (GameSettings{Difficulty: "Normal", Personality: "mirror"}).Strategy(); s != StrategyMirror {
		t.Fatalf("Normal personality: got %s", s)
	}
	if s := (GameSettings{Difficulty: "Normal", Personality: "mirror", ErrorRate: 0.2}).Strategy(); s != StrategyHumanish {
		t.Fatalf("positive error rate must select humanish: got %s", s)
	}
}

func TestDifficultyLabel(t *testing.T) {
	if got := (GameSettings{Difficulty: "Normal", Personality: "mirror"}).DifficultyLabel(); got != "Normal (mirror)" {
		t.Fatalf("got %q", got)
	}
	if got := (GameSettings{Difficulty: "Hard", Personality: "mirror"}).DifficultyLabel(); got != "Hard" {
		t.Fatalf("personality must not show outside Normal, got %q", got)
	}
	if got := (GameSettings{Difficulty: "Normal"}).DifficultyLabel(); got != "Normal (balanced)" {
		t.Fatalf("empty personality defaults in the label, got %q", got)
	}
}
