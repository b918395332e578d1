package fuzzy

import (
	"reflect"
	"testing"
)

func TestScoreSubstringMatch(t *testing.T) {
	m, ok := Score("Sa", "Safari")
	if !ok {
		t.Fatal("expected 'Sa' to match 'Safari'")
	}
	if !reflect.DeepEqual(m.Positions, []int{0, 1}) {
		t.Fatalf("expected positions {0,1}, got %v", m.Positions)
	}
	if m.Score <= 0 {
		t.Fatalf("expected positive score, got %f", m.Score)
	}
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	lower, ok := Score("safari", "Safari")
	if !ok {
		t.Fatal("expected lowercase query to match")
	}
	upper, ok := Score("SAFARI", "safari")
	if !ok {
		t.Fatal("expected uppercase query to match")
	}
	if lower.Score != upper.Score {
		t.Fatalf("expected case-insensitive scores to agree, got %f vs %f", lower.Score, upper.Score)
	}
}

func TestScoreRejectsNonSubstring(t *testing.T) {
	if _, ok := Score("xyz", "Safari"); ok {
		t.Fatal("expected 'xyz' not to match 'Safari'")
	}
	if _, ok := Score("fa s", "Safari"); ok {
		t.Fatal("expected out-of-order runes not to match")
	}
	// "S" and "a" appear in order in Slack, but not adjacently.
	if _, ok := Score("Sa", "Slack"); ok {
		t.Fatal("expected scattered runes not to match")
	}
}

func TestScoreQueryLongerThanCandidate(t *testing.T) {
	if _, ok := Score("mailbox", "Mail"); ok {
		t.Fatal("expected query longer than candidate not to match")
	}
}

func TestScoreEmptyQueryMatchesEverything(t *testing.T) {
	m, ok := Score("", "anything")
	if !ok {
		t.Fatal("expected empty query to match")
	}
	if m.Score != 0 || len(m.Positions) != 0 {
		t.Fatalf("expected baseline match, got %#v", m)
	}
}

func TestScoreWhitespaceIsLiteral(t *testing.T) {
	if _, ok := Score("y m", "MyMac"); ok {
		t.Fatal("expected query space to require a literal space")
	}
	m, ok := Score("y m", "Activity Monitor")
	if !ok {
		t.Fatal("expected query space to match a candidate space")
	}
	if !reflect.DeepEqual(m.Positions, []int{7, 8, 9}) {
		t.Fatalf("unexpected positions %v", m.Positions)
	}
}

func TestScorePicksBestOccurrence(t *testing.T) {
	m, ok := Score("m", "xxm m")
	if !ok {
		t.Fatal("expected match")
	}
	if !reflect.DeepEqual(m.Positions, []int{4}) {
		t.Fatalf("expected the word-boundary occurrence to win, got positions %v", m.Positions)
	}
}

func TestScorePrefersWordBoundaries(t *testing.T) {
	boundary, ok := Score("m", "a-m")
	if !ok {
		t.Fatal("expected boundary match")
	}
	interior, ok := Score("m", "axm")
	if !ok {
		t.Fatal("expected interior match")
	}
	if boundary.Score <= interior.Score {
		t.Fatalf("expected separator-anchored match to outscore interior match: %f vs %f",
			boundary.Score, interior.Score)
	}
}

func TestRankAllOrdersByScore(t *testing.T) {
	candidates := []string{"The quick termz farm", "Terminal", "iTerm"}
	ranks := RankAll("term", candidates)
	if len(ranks) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(ranks))
	}
	if candidates[ranks[0].Index] != "Terminal" {
		t.Fatalf("expected Terminal first, got %q", candidates[ranks[0].Index])
	}
	if candidates[len(candidates)-1] != "iTerm" {
		t.Fatalf("test fixture changed unexpectedly")
	}
	if ranks[len(ranks)-1].Index != 0 {
		t.Fatalf("expected late-occurrence candidate last, got index %d", ranks[len(ranks)-1].Index)
	}
}

func TestRankAllTieBreaksByLengthThenIndex(t *testing.T) {
	ranks := RankAll("", []string{"bbbb", "aa", "cc"})
	if len(ranks) != 3 {
		t.Fatalf("expected every candidate to match empty query, got %d", len(ranks))
	}
	if ranks[0].Index != 1 || ranks[1].Index != 2 || ranks[2].Index != 0 {
		t.Fatalf("unexpected tie-break order: %v, %v, %v", ranks[0].Index, ranks[1].Index, ranks[2].Index)
	}
}

func TestRankAllExcludesNonMatches(t *testing.T) {
	ranks := RankAll("xyz", []string{"Safari", "Mail"})
	if len(ranks) != 0 {
		t.Fatalf("expected no matches, got %d", len(ranks))
	}
}

func TestRankAllIsDeterministic(t *testing.T) {
	candidates := []string{"Safari", "Spotify", "Slack"}
	first := RankAll("s", candidates)
	second := RankAll("s", candidates)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical rankings, got %#v vs %#v", first, second)
	}
}
